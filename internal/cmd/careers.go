package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaffkit/screenstats/internal/career"
)

var (
	careersStoreDir string
	careersClub     string
	careersManager  string
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Manage career saves in the local store",
}

var careersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new career",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := career.NewStore(careersStoreDir)
		if err != nil {
			return err
		}
		c, err := store.Create(careersClub, careersManager)
		if err != nil {
			return err
		}
		fmt.Printf("Created career %q in %s\n", c.Detail().ID, store.Dir())
		return nil
	},
}

var careersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered careers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := career.NewStore(careersStoreDir)
		if err != nil {
			return err
		}
		details, err := store.List()
		if err != nil {
			return err
		}
		if len(details) == 0 {
			fmt.Println("No careers registered")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tCLUB\tMANAGER\tCREATED\n")
		for _, d := range details {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				d.ID, d.ClubName, d.ManagerName, d.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(careersCmd)
	careersCmd.AddCommand(careersCreateCmd)
	careersCmd.AddCommand(careersListCmd)

	careersCmd.PersistentFlags().StringVar(&careersStoreDir, "store", "careers", "Career store directory")
	careersCreateCmd.Flags().StringVar(&careersClub, "club", "", "Club name")
	careersCreateCmd.Flags().StringVar(&careersManager, "manager", "", "Manager name")
	_ = careersCreateCmd.MarkFlagRequired("club")
}
