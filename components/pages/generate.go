package pages

//go:generate go tool templ generate
