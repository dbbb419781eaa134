package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nbgit/nbgit/internal/git"
)

// authFlags are the credential flags shared by the remote operation commands.
type authFlags struct {
	username         string
	passwordStdin    bool
	cacheCredentials bool
}

func (f *authFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "Username for the remote (enables authentication)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().BoolVar(&f.cacheCredentials, "cache-credentials", false, "Register the platform credential cache so the password is not re-prompted")
}

// resolveCredentials turns the credential flags into a Credentials value.
// Without --username the operation is unauthenticated. The password comes
// from stdin when --password-stdin is set; otherwise an interactive prompt is
// used when stdin is a terminal. The core never prompts: prompting happens
// here, before the operation starts.
func resolveCredentials(f *authFlags) (*git.Credentials, error) {
	if f.username == "" {
		if f.passwordStdin {
			return nil, fmt.Errorf("--password-stdin requires --username")
		}
		return nil, nil
	}

	if f.passwordStdin {
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil && password == "" {
			return nil, fmt.Errorf("failed to read password from stdin: %w", err)
		}
		return &git.Credentials{
			Username: f.username,
			Password: strings.TrimRight(password, "\r\n"),
		}, nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("no terminal available for password prompt; use --password-stdin")
	}

	var password string
	prompt := &survey.Password{
		Message: fmt.Sprintf("Password for %s", f.username),
	}
	if err := survey.AskOne(prompt, &password); err != nil {
		return nil, fmt.Errorf("canceled")
	}

	return &git.Credentials{Username: f.username, Password: password}, nil
}
