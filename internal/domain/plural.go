package domain

// DaysWord returns the Russian word for "day" agreeing with n:
// 1, 21, 31 → "день"; 2..4, 22..24 → "дня"; everything else,
// including 11..14, → "дней".
func DaysWord(n int) string {
	if n < 0 {
		n = -n
	}
	n %= 100
	switch {
	case n%10 == 1 && n != 11:
		return "день"
	case n%10 >= 2 && n%10 <= 4 && (n < 12 || n > 14):
		return "дня"
	default:
		return "дней"
	}
}
