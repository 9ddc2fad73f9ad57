package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// askConfirmation asks for yes/no confirmation; force answers yes.
func askConfirmation(in io.Reader, out io.Writer, message string, force bool) bool {
	if force {
		return true
	}
	fmt.Fprintf(out, "%s (y/N): ", message)
	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
