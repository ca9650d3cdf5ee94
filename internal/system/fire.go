// internal/system/fire.go
package system

import (
	"fmt"
	"log"
	"strings"

	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
	mathutil "garden-defense/pkg/utils"
)

// FireCommand - запрос на запуск снаряда.
type FireCommand struct {
	Direction utils.Vec3 // единичный вектор от точки выстрела к цели
	Magnitude float64
}

// timerEpsilon поглощает ошибку накопления dt в таймерах: 10 тиков по 0.1
// должны дать ровно 1 с, а не 0.9999999999999999.
const timerEpsilon = 1e-9

// TickFire продвигает перезарядку на один тик.
//
// Сначала перезарядка уменьшается на deltaTime (не ниже нуля), поэтому без
// цели она тоже убывает. Если после этого она истекла и цель есть, выдаётся
// команда, а перезарядка становится ровно 1/fireRate. Выстрелы идут с периодом
// 1/fireRate, округлённым вверх до тика.
func TickFire(deltaTime float64, target *utils.Vec3, cooldown, fireRate float64, firePoint utils.Vec3, launchForce float64) (float64, *FireCommand, error) {
	if fireRate <= 0 {
		return cooldown, nil, fmt.Errorf("%w: fire rate %.2f must be positive", ErrInvalidConfiguration, fireRate)
	}
	period := 1.0 / fireRate
	cooldown = mathutil.Clamp(cooldown-deltaTime, 0, period)
	if cooldown <= timerEpsilon {
		cooldown = 0
	}
	if target == nil || cooldown > 0 {
		return cooldown, nil, nil
	}
	cmd := &FireCommand{
		Direction: target.Sub(firePoint).Normalize(),
		Magnitude: launchForce,
	}
	return period, cmd, nil
}

// FaceTarget returns the yaw that turns self towards target. Pitch and roll stay level.
func FaceTarget(self, target utils.Vec3) float64 {
	return utils.YawTowards(self, target)
}

// ValidateCombat checks the setup-time requirements of a shooter.
func ValidateCombat(c *component.Combat, hasPrefab func(types.PrefabID) bool) error {
	var problems []string
	if c.FireRate <= 0 {
		problems = append(problems, fmt.Sprintf("fire rate %.2f must be positive", c.FireRate))
	}
	if c.ProjectilePrefab == "" {
		problems = append(problems, "projectile prefab is missing")
	} else if hasPrefab != nil && !hasPrefab(c.ProjectilePrefab) {
		problems = append(problems, fmt.Sprintf("projectile prefab %q is unknown", c.ProjectilePrefab))
	}
	if c.FirePoint == nil {
		problems = append(problems, "fire point is missing")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// CombatSystem управляет стрельбой растений
type CombatSystem struct {
	ecs             *entity.ECS
	spawner         interfaces.Spawner
	impulses        interfaces.ImpulseSink
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, spawner interfaces.Spawner, impulses interfaces.ImpulseSink, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		spawner:         spawner,
		impulses:        impulses,
		eventDispatcher: eventDispatcher,
	}
}

// Setup проверяет конфигурацию всех растений один раз. Некорректные растения
// становятся инертными, о каждом сообщается ровно один раз.
func (s *CombatSystem) Setup(hasPrefab func(types.PrefabID) bool) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		if combat.Inert {
			continue
		}
		if err := ValidateCombat(combat, hasPrefab); err != nil {
			s.makeInert(id, combat, err)
		}
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		if combat.Inert {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}

		targetPos := s.resolveTarget(combat)
		if targetPos != nil {
			// Поворачиваемся к цели только по горизонтали
			tr.Yaw = FaceTarget(tr.Position, *targetPos)
		}

		var offset utils.Vec3
		if combat.FirePoint != nil {
			offset = *combat.FirePoint
		}
		firePoint := tr.Position.Add(utils.RotateYaw(offset, tr.Yaw))

		cooldown, cmd, err := TickFire(deltaTime, targetPos, combat.FireCooldown, combat.FireRate, firePoint, combat.LaunchForce)
		if err != nil {
			s.makeInert(id, combat, err)
			continue
		}
		combat.FireCooldown = cooldown
		if cmd != nil {
			s.fire(id, combat, firePoint, tr.Yaw, cmd)
		}
	}
}

// resolveTarget разыменовывает слабую ссылку на цель. Пропавшая или мёртвая
// цель сбрасывается молча.
func (s *CombatSystem) resolveTarget(combat *component.Combat) *utils.Vec3 {
	if combat.TargetID == 0 {
		return nil
	}
	if !s.ecs.Exists(combat.TargetID) {
		combat.TargetID = 0
		return nil
	}
	if health, ok := s.ecs.Healths[combat.TargetID]; ok && health.State == component.Dead {
		combat.TargetID = 0
		return nil
	}
	aim := s.ecs.Transforms[combat.TargetID].Position
	if collider, ok := s.ecs.Colliders[combat.TargetID]; ok {
		aim.Y += collider.Height
	}
	return &aim
}

func (s *CombatSystem) fire(shooterID types.EntityID, combat *component.Combat, firePoint utils.Vec3, yaw float64, cmd *FireCommand) {
	projID := s.spawner.Spawn(combat.ProjectilePrefab, firePoint, yaw)
	if projID == 0 {
		log.Printf("CombatSystem: could not spawn projectile %q for plant %d", combat.ProjectilePrefab, shooterID)
		return
	}
	if proj, ok := s.ecs.Projectiles[projID]; ok {
		proj.Owner = shooterID
	}
	s.impulses.ApplyImpulse(projID, cmd.Direction, cmd.Magnitude)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.FiredData{
		Shooter:    shooterID,
		Projectile: projID,
		Target:     combat.TargetID,
		Direction:  cmd.Direction,
	}})
}

func (s *CombatSystem) makeInert(id types.EntityID, combat *component.Combat, err error) {
	combat.Inert = true
	combat.TargetID = 0
	log.Printf("CombatSystem: plant %d is inert: %v", id, err)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ConfigInvalid, Data: event.ConfigInvalidData{Entity: id, Err: err}})
}
