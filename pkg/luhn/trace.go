package luhn

// Step is the contribution of a single digit to the checksum.
type Step struct {
	Position   int  // index in the sanitized input, left to right
	Digit      int  // original digit value
	Doubled    bool // whether the digit was doubled
	Value      int  // value after doubling and reduction
	RunningSum int  // cumulative right-to-left sum including this digit
}

// Result is a complete checksum trace.
type Result struct {
	Input      string // sanitized input
	Steps      []Step // ordered by Position
	TotalSum   int
	IsValid    bool
	CheckDigit int // last digit of the input, -1 when the input is unusable
}

// Trace computes the checksum of s and records each digit's contribution.
// It never fails: empty or non-digit input yields a Result with no steps,
// IsValid false and CheckDigit -1.
func Trace(s string) Result {
	digits := sanitize(s)
	if !isDigits(digits) {
		return Result{Input: digits, CheckDigit: -1}
	}

	n := len(digits)
	steps := make([]Step, n)
	running := 0
	double := false
	for i := n - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		v := process(d, double)
		running += v
		steps[i] = Step{
			Position:   i,
			Digit:      d,
			Doubled:    double,
			Value:      v,
			RunningSum: running,
		}
		double = !double
	}

	return Result{
		Input:      digits,
		Steps:      steps,
		TotalSum:   running,
		IsValid:    running%10 == 0,
		CheckDigit: int(digits[n-1] - '0'),
	}
}
