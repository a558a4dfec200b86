package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/tattvam/pkg/validate"
)

type registerInput struct {
	Username string  `json:"username" validate:"required,min=2,max=50"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    string  `json:"phone"    validate:"nullable,min=7"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Status   string  `json:"status"   validate:"required,in=pending,processing,shipped"`
}

func valid() registerInput {
	return registerInput{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "secret1",
		Price:    450,
		Status:   "pending",
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(valid())
	if validate.HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRequired(t *testing.T) {
	in := valid()
	in.Username = "  "
	errs := validate.Struct(in)
	if errs["username"] == "" {
		t.Errorf("expected username error, got %v", errs)
	}
}

func TestEmail(t *testing.T) {
	in := valid()
	in.Email = "not-an-email"
	errs := validate.Struct(in)
	if errs["email"] == "" {
		t.Errorf("expected email error, got %v", errs)
	}
}

func TestNumericGt(t *testing.T) {
	in := valid()
	in.Price = 0
	errs := validate.Struct(in)
	if errs["price"] == "" {
		t.Errorf("expected price error, got %v", errs)
	}
}

func TestInWithTrailingRule(t *testing.T) {
	type input struct {
		Role string `json:"role" validate:"required,in=user,admin,max=20"`
	}
	if errs := validate.Struct(input{Role: "admin"}); validate.HasErrors(errs) {
		t.Errorf("admin should be allowed, got %v", errs)
	}
	if errs := validate.Struct(input{Role: "root"}); errs["role"] == "" {
		t.Error("root should be rejected")
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	in := valid()
	in.Phone = ""
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("empty nullable phone should pass, got %v", errs)
	}

	in.Phone = "123"
	if errs := validate.Struct(in); errs["phone"] == "" {
		t.Error("short non-empty phone should fail min=7")
	}
}

func TestMinOnString(t *testing.T) {
	in := valid()
	in.Password = "abc"
	errs := validate.Struct(in)
	if errs["password"] == "" {
		t.Errorf("expected password error, got %v", errs)
	}
}
