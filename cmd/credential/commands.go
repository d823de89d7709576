package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	domainerrors "users/internal/domain/errors"
	"users/internal/usecase"

	"github.com/pkg/errors"
)

func runSubcommand(ctx context.Context, uc usecase.CredentialUsecase, args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage()

		return errors.New("missing subcommand")
	}

	switch args[0] {
	case "hash":
		return handleHash(ctx, uc, args[1:], out)
	case "verify":
		return handleVerify(ctx, uc, args[1:], out)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", args[0])
	}
}

func handleHash(ctx context.Context, uc usecase.CredentialUsecase, args []string, out io.Writer) error {
	cmd := flag.NewFlagSet("hash", flag.ContinueOnError)
	name := cmd.String("name", "", "User display name (2-15 characters)")
	password := cmd.String("password", "", "Plain-text password (at least 6 characters)")
	cmd.SetOutput(out)
	if err := cmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return errors.Wrap(err, "failed to parse hash flags")
	}

	output, err := uc.PrepareAccount(ctx, &usecase.PrepareAccountInput{Name: *name, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "id:   %s\n", output.Account.ID)
	fmt.Fprintf(out, "name: %s\n", output.Account.Name)
	fmt.Fprintf(out, "hash: %s\n", output.Account.PasswordHash)

	return nil
}

func handleVerify(ctx context.Context, uc usecase.CredentialUsecase, args []string, out io.Writer) error {
	cmd := flag.NewFlagSet("verify", flag.ContinueOnError)
	hash := cmd.String("hash", "", "Stored bcrypt hash")
	password := cmd.String("password", "", "Candidate password")
	cmd.SetOutput(out)
	if err := cmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return errors.Wrap(err, "failed to parse verify flags")
	}

	err := uc.VerifyCredential(ctx, &usecase.VerifyCredentialInput{PasswordHash: *hash, Password: *password})
	switch {
	case err == nil:
		fmt.Fprintln(out, "match")

		return nil
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		fmt.Fprintln(out, "mismatch")

		return err
	default:
		return err
	}
}

func exitCode(err error) int {
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return exitMismatch
	}

	return 1
}

func printUsage() {
	fmt.Println("Usage: credential <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  hash      Validate a name and password and print the hashed account")
	fmt.Println("  verify    Check a password against a stored hash")
	fmt.Println("")
	fmt.Println("Use 'credential <command> -h' for more information about a command.")
}
