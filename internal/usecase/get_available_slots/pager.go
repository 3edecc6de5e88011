package get_available_slots

import (
	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

// pageSlice возвращает видимый срез страницы page (с нуля) размера size
// и флаги наличия соседних страниц. Чистая функция без скрытого состояния.
// Выход page за границы допустимых страниц — нарушение контракта вызывающей
// стороны: машина состояний двигает страницу только по валидированным
// навигационным действиям.
func pageSlice(sequence []types.TimeString, page, size int) (chunk []types.TimeString, hasPrev, hasNext bool) {
	start := page * size
	if start >= len(sequence) {
		return []types.TimeString{}, page > 0, false
	}

	end := start + size
	if end > len(sequence) {
		end = len(sequence)
	}

	return sequence[start:end], page > 0, end < len(sequence)
}
