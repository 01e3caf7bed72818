package zoo

import (
	"errors"
	"fmt"
	"testing"
)

func TestCheckEligibility(t *testing.T) {
	cases := []struct {
		gender   Gender
		category Category
		age      uint32
		want     error
	}{
		{GenderMale, CategoryFish, 1, nil},
		{GenderMale, CategoryDog, 1, nil},
		{GenderMale, CategoryCat, 50, ErrGenderRestricted},
		{GenderMale, CategoryRabbit, 50, ErrGenderRestricted},
		{GenderMale, CategoryParrot, 50, ErrGenderRestricted},
		{GenderFemale, CategoryCat, MinCatAgeForWomen - 1, ErrGenderRestricted},
		{GenderFemale, CategoryCat, MinCatAgeForWomen, nil},
		{GenderFemale, CategoryFish, 1, nil},
		{GenderFemale, CategoryParrot, 1, nil},
		{Gender("x"), CategoryFish, 1, ErrInvalidGender},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s/%d", tc.gender, tc.category, tc.age), func(t *testing.T) {
			err := CheckEligibility(tc.gender, tc.category, tc.age)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected eligible, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCheckActiveLoanOrder(t *testing.T) {
	active := Loan{Holder: "x", Category: CategoryFish, Age: 24, Gender: GenderMale}

	if err := checkActiveLoan(active, 30, GenderFemale); !errors.Is(err, ErrInvalidAge) {
		t.Fatalf("age mismatch must win, got %v", err)
	}
	if err := checkActiveLoan(active, 24, GenderFemale); !errors.Is(err, ErrGenderMismatch) {
		t.Fatalf("expected gender mismatch, got %v", err)
	}
	if err := checkActiveLoan(active, 24, GenderMale); !errors.Is(err, ErrAlreadyBorrowed) {
		t.Fatalf("expected already borrowed, got %v", err)
	}
}

func TestCodeAndRuleErrors(t *testing.T) {
	if Code(errRestrictedForMen) != "gender_restricted" {
		t.Fatalf("unexpected code %q", Code(errRestrictedForMen))
	}
	if Code(fmt.Errorf("wrapped: %w", ErrUnavailable)) != "unavailable" {
		t.Fatal("wrapped sentinel must keep its code")
	}
	if IsRuleError(errors.New("db down")) {
		t.Fatal("infrastructure error reported as rule error")
	}
}

func TestParseCategoryAndGender(t *testing.T) {
	c, err := ParseCategory(" Fish ")
	if err != nil || c != CategoryFish {
		t.Fatalf("ParseCategory: got %q, %v", c, err)
	}
	if _, err := ParseCategory("none"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected invalid category, got %v", err)
	}
	g, err := ParseGender("FEMALE")
	if err != nil || g != GenderFemale {
		t.Fatalf("ParseGender: got %q, %v", g, err)
	}
	if _, err := ParseGender(""); !errors.Is(err, ErrInvalidGender) {
		t.Fatalf("expected invalid gender, got %v", err)
	}
}
