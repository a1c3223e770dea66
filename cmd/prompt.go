package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm prints the message and reads a yes/no answer from stdin.
// Only "yes" and "y" count as confirmation.
func confirm(message string) (bool, error) {
	fmt.Print(message)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
