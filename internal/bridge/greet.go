package bridge

import "fmt"

// Greet formats a greeting for name. It is pure and total.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
