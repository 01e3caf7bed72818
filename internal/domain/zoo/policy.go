package zoo

// MinCatAgeForWomen es la edad mínima para que una mujer pida un gato.
const MinCatAgeForWomen = 40

// CheckEligibility aplica la tabla de elegibilidad por género:
//   - male: solo fish y dog
//   - female: cualquiera; cat solo con edad >= 40
func CheckEligibility(gender Gender, category Category, age uint32) error {
	switch gender {
	case GenderMale:
		if category != CategoryFish && category != CategoryDog {
			return errRestrictedForMen
		}
	case GenderFemale:
		if category == CategoryCat && age < MinCatAgeForWomen {
			return errRestrictedForWomenUnder
		}
	default:
		return ErrInvalidGender
	}
	return nil
}

// checkActiveLoan valida un nuevo borrow contra el préstamo activo del holder.
// Orden: edad distinta, género distinto, y por último "ya tiene préstamo".
func checkActiveLoan(active Loan, age uint32, gender Gender) error {
	if active.Age != age {
		return ErrInvalidAge
	}
	if active.Gender != gender {
		return ErrGenderMismatch
	}
	return ErrAlreadyBorrowed
}
