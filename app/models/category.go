package models

// Validate checks that the category is structurally sound
func (c *Category) Validate() error {
	return validate.Struct(c)
}
