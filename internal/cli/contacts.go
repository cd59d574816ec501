package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/abookhq/abook/internal/book"
)

// List prints the contacts of the bound address book.
func (a *App) List(ctx context.Context) error {
	if a.model == nil {
		fmt.Println("No address book bound. Log in first.")
		return nil
	}

	contacts := a.model.Contacts()
	if len(contacts) == 0 {
		fmt.Println("The address book is empty.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPHONE\tEMAIL\tTAGS")
	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Phone, c.Email, strings.Join(c.Tags, ","))
	}
	return w.Flush()
}

// Add prompts for contact fields and stores the new contact.
func (a *App) Add(ctx context.Context) error {
	if a.model == nil {
		fmt.Println("No address book bound. Log in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}

	c := book.Contact{Name: name, Phone: phone, Email: email, Address: address}
	if err := a.model.AddContact(c); err != nil {
		fmt.Printf("Could not add contact: %v\n", err)
		return nil
	}

	fmt.Println("Contact added.")
	return nil
}

// Remove prompts for a name and deletes that contact.
func (a *App) Remove(ctx context.Context) error {
	if a.model == nil {
		fmt.Println("No address book bound. Log in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Name to remove", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.model.RemoveContact(name); err != nil {
		fmt.Printf("Could not remove contact: %v\n", err)
		return nil
	}

	fmt.Println("Contact removed.")
	return nil
}
