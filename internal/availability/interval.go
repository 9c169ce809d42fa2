package availability

// Пороговые значения политики выбора шага сетки
const (
	shortServiceMaxMinutes  = 30
	mediumServiceMaxMinutes = 60
	longServiceMaxMinutes   = 120

	fineIntervalMinutes   = 15
	mediumIntervalMinutes = 30
	coarseIntervalMinutes = 60
)

// IntervalForDuration возвращает шаг сетки слотов для длительности услуги.
//
// Стандартное для индустрии укрупнение: короткие услуги получают мелкую
// сетку, длинные - крупную, чтобы список слотов не разрастался.
// Чистая функция без состояния, детерминирована для одинакового входа.
//
// Монотонность по длительности: для d1 <= d2 всегда
// IntervalForDuration(d1) <= IntervalForDuration(d2)
func IntervalForDuration(durationMinutes int) int {
	switch {
	case durationMinutes <= shortServiceMaxMinutes:
		return fineIntervalMinutes
	case durationMinutes <= mediumServiceMaxMinutes:
		return mediumIntervalMinutes
	case durationMinutes <= longServiceMaxMinutes:
		return coarseIntervalMinutes
	default:
		half := durationMinutes / 2
		if half < coarseIntervalMinutes {
			return coarseIntervalMinutes
		}
		return half
	}
}
