package models

// Field is a single key/value row of a rendered submission
type Field struct {
	Key   string
	Value string
}

// Submission is a landing page form submission. It only lives for the
// duration of the background task that mails it.
type Submission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Fields returns the submission keyed by its wire names, in wire order
func (s Submission) Fields() []Field {
	return []Field{
		{Key: "firstName", Value: s.FirstName},
		{Key: "lastName", Value: s.LastName},
		{Key: "email", Value: s.Email},
		{Key: "phone", Value: s.Phone},
	}
}
