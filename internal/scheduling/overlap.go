package scheduling

// intervalsOverlap проверяет пересечение двух временных интервалов,
// заданных в минутах от полуночи.
//
// Проверка выполняется по пяти явным условиям (попадание каждой границы
// внутрь другого интервала плюс полное вложение), а не через упрощённую
// формулу maxStart < minEnd. Граничное поведение этой формулировки
// закреплено тестами и используется подбором свободных слотов:
//
// - Интервалы 11:30-12:00 и 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Интервалы 09:00-10:00 и 10:00-11:00 → НЕТ пересечения (граничат)
// - Полностью совпадающие интервалы → ЕСТЬ пересечение
//
// Не "упрощать" формулировку без проверки граничных случаев.
func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	switch {
	case aStart >= bStart && aStart < bEnd:
		// Начало A внутри B
		return true
	case aEnd > bStart && aEnd <= bEnd:
		// Конец A внутри B
		return true
	case bStart >= aStart && bStart < aEnd:
		// Начало B внутри A
		return true
	case bEnd > aStart && bEnd <= aEnd:
		// Конец B внутри A
		return true
	case aStart <= bStart && aEnd >= bEnd:
		// A полностью содержит B
		return true
	}
	return false
}
