package cmd

import (
	"fmt"
	"strings"

	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/spf13/cobra"
)

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Inspect earned certifications",
}

var certsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all earned certifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		issuer := cert.NewIssuer(s.EventRepo(), nil, nil, nil)
		certs, err := issuer.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list certifications: %w", err)
		}
		if len(certs) == 0 {
			fmt.Println("No certifications earned yet.")
			return nil
		}

		fmt.Printf("%-32s  %5s  %-10s  %-10s  %s\n",
			"Skill", "Score", "Issued", "Status", "CID")
		fmt.Println(strings.Repeat("─", 92))

		for _, c := range certs {
			fmt.Printf("%-32s  %5d  %-10s  %-10s  %s\n",
				truncate(c.SkillName, 32),
				c.Score,
				c.IssuedAt.Local().Format("2006-01-02"),
				certStatus(c),
				truncate(c.MetadataCID, 24))
		}

		fmt.Printf("\n%d certifications\n", len(certs))
		return nil
	},
}

var certsVerifyCmd = &cobra.Command{
	Use:   "verify <specialty>",
	Short: "Check which certifications back a specialty claim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claim := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		issuer := cert.NewIssuer(s.EventRepo(), nil, nil, nil)
		backing, err := issuer.BackingSpecialty(cmd.Context(), claim)
		if err != nil {
			return fmt.Errorf("verify specialty: %w", err)
		}
		if len(backing) == 0 {
			fmt.Printf("No verified certifications back the specialty %q.\n", claim)
			return nil
		}

		fmt.Printf("Specialty %q is backed by %d certification(s):\n\n", claim, len(backing))
		for _, c := range backing {
			fmt.Printf("  %s  score %d  issued %s  (%s)\n",
				c.SkillName, c.Score,
				c.IssuedAt.Local().Format("2006-01-02"),
				certStatus(c))
		}
		return nil
	},
}

func certStatus(c cert.Certification) string {
	switch {
	case c.Verified:
		return "verified"
	case c.MetadataCID != "":
		return "pinned"
	default:
		return "local"
	}
}

func init() {
	certsCmd.AddCommand(certsListCmd)
	certsCmd.AddCommand(certsVerifyCmd)
}
