package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"custdesk/internal/domain"
	"custdesk/internal/usecase"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one customer record (interactive unless field flags are given)",
	RunE:  runAdd,
}

var fieldFlags = []string{"name", "birthday", "email", "phone", "address", "contact"}

func init() {
	addCmd.Flags().String("name", "", "customer name")
	addCmd.Flags().String("birthday", "", "birthday, YYYY-MM-DD")
	addCmd.Flags().String("email", "", "email address")
	addCmd.Flags().String("phone", "", "phone number")
	addCmd.Flags().String("address", "", "postal address")
	addCmd.Flags().String("contact", "Email", "preferred contact: Email, Phone or Mail")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}

	for _, f := range fieldFlags {
		if cmd.Flags().Changed(f) {
			return submitOnce(cmd, a.Entry)
		}
	}
	return promptLoop(cmd, a.Entry)
}

func submitOnce(cmd *cobra.Command, uc *usecase.CustomerUC) error {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	in := domain.FormInput{
		Name:             get("name"),
		Birthday:         get("birthday"),
		Email:            get("email"),
		Phone:            get("phone"),
		Address:          get("address"),
		PreferredContact: get("contact"),
	}

	id, err := uc.Submit(cmd.Context(), in)
	if err != nil {
		printViolations(cmd.ErrOrStderr(), err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved customer #%d\n", id)
	return nil
}

// promptLoop collects the six fields from stdin, submits, and starts over
// with a cleared form after each saved record. Ends on EOF.
func promptLoop(cmd *cobra.Command, uc *usecase.CustomerUC) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for {
		in, ok := readForm(sc, out)
		if !ok {
			return nil
		}
		id, err := uc.Submit(cmd.Context(), in)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(out, "Please fix the following:")
				printViolations(out, err)
				continue
			}
			return err
		}
		fmt.Fprintf(out, "Saved customer #%d\n", id)
	}
}

func readForm(sc *bufio.Scanner, out io.Writer) (domain.FormInput, bool) {
	var in domain.FormInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &in.Name},
		{"Birthday (YYYY-MM-DD)", &in.Birthday},
		{"Email", &in.Email},
		{"Phone", &in.Phone},
		{"Address", &in.Address},
		{"Preferred contact (Email/Phone/Mail)", &in.PreferredContact},
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%s: ", f.label)
		if !sc.Scan() {
			return in, false
		}
		*f.dst = sc.Text()
	}
	return in, true
}

func printViolations(w io.Writer, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, v := range verr.Violations {
		fmt.Fprintln(w, "  - "+v)
	}
}
