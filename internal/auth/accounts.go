package auth

import "storefront/internal/model"

type account struct {
	email    string
	password string
	user     model.User
	welcome  model.Notification
}

// accounts are the fixed demo credentials.
var accounts = []account{
	{
		email:    "admin@example.com",
		password: "admin123",
		user: model.User{
			ID:      "1",
			Name:    "Admin User",
			Email:   "admin@example.com",
			IsAdmin: true,
		},
		welcome: model.Notification{
			Title:       "Welcome back, Admin!",
			Description: "You have successfully logged in.",
			Variant:     model.VariantDefault,
		},
	},
	{
		email:    "user@example.com",
		password: "user123",
		user: model.User{
			ID:      "2",
			Name:    "Regular User",
			Email:   "user@example.com",
			IsAdmin: false,
		},
		welcome: model.Notification{
			Title:       "Welcome back!",
			Description: "You have successfully logged in.",
			Variant:     model.VariantDefault,
		},
	},
}

func lookup(email, password string) (account, bool) {
	for _, a := range accounts {
		if a.email == email && a.password == password {
			return a, true
		}
	}
	return account{}, false
}
