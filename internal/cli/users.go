package cli

import (
	"context"
	"fmt"
	"sort"
)

// Users prints every registered account, credential stripped.
func (a *App) Users(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list, err := a.store.All(ctx)
	if err != nil {
		a.log.Error(ctx, "listing users", "error", err)
		fmt.Println("Could not list registered users, try again later.")
		return err
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })

	fmt.Printf("%d registered user(s):\n", len(list))
	for _, u := range list {
		pub := u.Public()
		fmt.Printf("  %-30s %-20s %-6s since %s\n",
			pub.Email, pub.Name, pub.Role, pub.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
