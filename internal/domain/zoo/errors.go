package zoo

import "errors"

// Errores de reglas de negocio. El mensaje es la razón fija que ve el caller.
var (
	ErrUnauthorized     = errors.New("not a trainer")
	ErrInvalidCategory  = errors.New("invalid animal type")
	ErrInvalidAge       = errors.New("invalid age")
	ErrInvalidGender    = errors.New("invalid gender")
	ErrUnavailable      = errors.New("selected animal not available")
	ErrGenderRestricted = errors.New("invalid animal for gender")
	ErrGenderMismatch   = errors.New("invalid gender")
	ErrAlreadyBorrowed  = errors.New("already adopted an animal")
	ErrNoActiveLoan     = errors.New("no borrowed animals")
	ErrCountOverflow    = errors.New("animal count overflow")
	ErrInvalidInput     = errors.New("invalid input")
)

// Las dos variantes de ErrGenderRestricted conservan la razón específica
// pero siguen matcheando con errors.Is(err, ErrGenderRestricted).
var (
	errRestrictedForMen        = &restrictionError{reason: "invalid animal for men"}
	errRestrictedForWomenUnder = &restrictionError{reason: "invalid animal for women under 40"}
)

type restrictionError struct {
	reason string
}

func (e *restrictionError) Error() string { return e.reason }

func (e *restrictionError) Is(target error) bool { return target == ErrGenderRestricted }

// Code devuelve el código estable de un error de reglas, o "" si no es uno.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidCategory):
		return "invalid_category"
	case errors.Is(err, ErrInvalidAge):
		return "invalid_age"
	case errors.Is(err, ErrInvalidGender):
		return "invalid_gender"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrGenderRestricted):
		return "gender_restricted"
	case errors.Is(err, ErrGenderMismatch):
		return "gender_mismatch"
	case errors.Is(err, ErrAlreadyBorrowed):
		return "already_borrowed"
	case errors.Is(err, ErrNoActiveLoan):
		return "no_active_loan"
	case errors.Is(err, ErrCountOverflow):
		return "count_overflow"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return ""
	}
}

// IsRuleError indica si err es un rechazo de negocio (no una falla de infraestructura).
func IsRuleError(err error) bool {
	return Code(err) != ""
}
