package models

import "strings"

func (ms *ModelSuite) TestUser_Create() {
	user := User{
		Email:     "  Buyer@Example.org ",
		FirstName: "First",
		LastName:  "Last",
	}
	ms.NoError(user.Create(ms.DB))
	ms.Equal("Buyer@Example.org", user.Email, "email should be trimmed on create")
	ms.False(user.ID.IsNil())
}

func (ms *ModelSuite) TestUser_FindByEmail() {
	fixtures := CreateUserFixtures(ms.DB, 2)
	user := fixtures.Users[0]

	var found User
	ms.NoError(found.FindByEmail(ms.DB, user.Email))
	ms.Equal(user.ID, found.ID)

	// lookup is case-insensitive
	var foundUpper User
	ms.NoError(foundUpper.FindByEmail(ms.DB, strings.ToUpper(user.Email)))
	ms.Equal(user.ID, foundUpper.ID)
}

func (ms *ModelSuite) TestEmailExists() {
	fixtures := CreateUserFixtures(ms.DB, 1)
	user := fixtures.Users[0]

	exists, err := EmailExists(ms.DB, strings.ToUpper(user.Email))
	ms.NoError(err)
	ms.True(exists)

	exists, err = EmailExists(ms.DB, "nobody@example.org")
	ms.NoError(err)
	ms.False(exists)
}

func (ms *ModelSuite) TestUser_Name() {
	user := User{FirstName: " First ", LastName: "Last"}
	ms.Equal("First Last", user.Name())

	user = User{FirstName: "Only"}
	ms.Equal("Only", user.Name())
}
