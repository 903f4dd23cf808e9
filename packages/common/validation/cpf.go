package validation

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"strings"
)

var invalidCPF = Error.NewStatusError("CPF inválido", http.StatusBadRequest)

// Validates CPF check digits and returns it formatted as XXX.XXX.XXX-XX
func CPF(raw string) (string, *Error.Status) {
	digits := onlyDigits(raw)

	if len(digits) != 11 {
		return "", Error.NewStatusError("CPF deve ter 11 dígitos", http.StatusBadRequest)
	}

	if strings.Count(digits, digits[:1]) == len(digits) {
		return "", invalidCPF
	}

	nums := make([]int, len(digits))
	for i, r := range digits {
		nums[i] = int(r - '0')
	}

	if checkDigit(nums[:9]) != nums[9] || checkDigit(nums[:10]) != nums[10] {
		return "", invalidCPF
	}

	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:], nil
}

// Weights go from len(nums)+1 down to 2.
func checkDigit(nums []int) int {
	sum := 0
	weight := len(nums) + 1
	for _, n := range nums {
		sum += n * weight
		weight--
	}

	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
