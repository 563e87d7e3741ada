package validators

import (
	"testing"

	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
)

func validNewUser() models.NewUser {
	return models.NewUser{
		FirstName:    "Jo",
		LastName:     "Ann",
		EmailAddress: "jo@x.com",
		Password:     "secret",
	}
}

func TestValidateNewUser_Valid(t *testing.T) {
	assert.Empty(t, ValidateNewUser(validNewUser()))
}

func TestValidateNewUser_SingleFieldMissing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.NewUser)
		wantMsg string
	}{
		{"missing first name", func(u *models.NewUser) { u.FirstName = "" }, MsgFirstNameRequired},
		{"missing last name", func(u *models.NewUser) { u.LastName = "" }, MsgLastNameRequired},
		{"missing email", func(u *models.NewUser) { u.EmailAddress = "" }, MsgEmailRequired},
		{"missing password", func(u *models.NewUser) { u.Password = "" }, MsgPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validNewUser()
			tt.mutate(&user)

			violations := ValidateNewUser(user)
			assert.Equal(t, []string{tt.wantMsg}, violations)
		})
	}
}

func TestValidateNewUser_MalformedEmail(t *testing.T) {
	for _, addr := range []string{"not-an-email", "jo@", "@x.com", "jo x@x.com", "Jo <jo@x.com>"} {
		user := validNewUser()
		user.EmailAddress = addr

		violations := ValidateNewUser(user)
		assert.Equal(t, []string{MsgEmailInvalid}, violations, "address %q", addr)
	}
}

func TestValidateNewUser_CollectsAllViolationsInOrder(t *testing.T) {
	violations := ValidateNewUser(models.NewUser{})

	assert.Equal(t, []string{
		MsgFirstNameRequired,
		MsgLastNameRequired,
		MsgEmailRequired,
		MsgPasswordRequired,
	}, violations)
}
