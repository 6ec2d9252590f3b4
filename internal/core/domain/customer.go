package domain

// UnknownCustomerID is returned when a name does not resolve to a customer.
const UnknownCustomerID int64 = -1

// Customer mirrors a row of the customer table. Name is the login key and
// Password is compared verbatim.
type Customer struct {
	ID       int64
	Name     string
	Password string
}
