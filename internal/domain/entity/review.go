package entity

// Review is a customer rating of a stall. Read-only in the current scope;
// reviews enter the system only through seed data.
type Review struct {
	ID       string
	UserName string
	Rating   int // 1..5
	Comment  string
	Date     string
}
