package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{
		UserID:    1,
		FirstName: "Mosh",
		LastName:  "Israeli",
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*User)
		errMsg string
	}{
		{name: "valid user", mutate: func(*User) {}},
		{name: "zero id", mutate: func(u *User) { u.UserID = 0 }, errMsg: "user id must be positive"},
		{name: "negative id", mutate: func(u *User) { u.UserID = -4 }, errMsg: "user id must be positive"},
		{name: "missing first name", mutate: func(u *User) { u.FirstName = "" }, errMsg: "first name is required"},
		{name: "missing last name", mutate: func(u *User) { u.LastName = "" }, errMsg: "last name is required"},
		{name: "missing birthday", mutate: func(u *User) { u.Birthday = time.Time{} }, errMsg: "birthday is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			err := user.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUser_BeforeCreate(t *testing.T) {
	user := validUser()

	require.NoError(t, user.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUser_BeforeCreateRejectsInvalidUser(t *testing.T) {
	user := validUser()
	user.FirstName = ""

	assert.Error(t, user.BeforeCreate(nil))
}

func TestUser_FullName(t *testing.T) {
	user := validUser()
	assert.Equal(t, "Mosh Israeli", user.FullName())
}

func TestParseBirthday(t *testing.T) {
	date, err := ParseBirthday("1992-05-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1992, 5, 15, 0, 0, 0, 0, time.UTC), date)

	ts, err := ParseBirthday("1992-05-15T10:00:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, 1992, ts.Year())

	_, err = ParseBirthday("15/05/1992")
	assert.Error(t, err)
}
