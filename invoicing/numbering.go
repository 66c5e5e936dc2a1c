package invoicing

import "fmt"

// NumberPrefix starts every invoice code.
const NumberPrefix = "TC"

// FormatInvoiceNumber builds the public invoice code: prefix, two-digit year,
// and the sequence number padded to at least two digits. From the 100th
// invoice of a year the number simply widens (TC26100).
func FormatInvoiceNumber(year, n int) string {
	return fmt.Sprintf("%s%02d%02d", NumberPrefix, year%100, n)
}
