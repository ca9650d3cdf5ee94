package component

// Countdown - таймер косметического эффекта.
type Countdown struct {
	Timer    float64 // сколько осталось
	Duration float64 // полная длительность
}

// Remaining возвращает оставшуюся долю эффекта в [0, 1].
func (c Countdown) Remaining() float64 {
	if c.Duration <= 0 || c.Timer <= 0 {
		return 0
	}
	return min(c.Timer/c.Duration, 1)
}

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Countdown
}

// ImpactMarker - косметическая отметка в точке попадания.
type ImpactMarker struct {
	Countdown
}
