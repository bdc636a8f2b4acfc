// Package postmark builds and sends the mails the planner produces. The
// construction of a confirmation batch is pure and lives apart from the
// SMTP dispatch so it can be tested without a mail server.
package postmark

type Address struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Message struct {
	To      Address `json:"to"`
	From    Address `json:"from"`
	Subject string  `json:"subject"`
	HTML    string  `json:"html"`
}
