package types

// EntityID - идентификатор сущности в ECS. Ноль никогда не выдаётся и означает "нет сущности".
type EntityID uint32

// PrefabID names a spawnable template from the definitions library.
type PrefabID string
