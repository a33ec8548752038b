package cmd

import (
	"fmt"
	"strings"

	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the certifiable skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var list []skills.Skill
		if category != "" {
			list = skills.ByCategory(category)
			if len(list) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		} else {
			list = skills.AllSkills()
		}

		printSkillTable(list)
		return nil
	},
}

var skillSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search skills by name, description, or tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := skills.Search(args[0])
		if len(list) == 0 {
			fmt.Printf("No skills match %q.\n", args[0])
			return nil
		}
		printSkillTable(list)
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show full details for one skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := skills.GetSkill(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", s.Icon, s.Name)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("ID:          %s\n", s.ID)
		fmt.Printf("Category:    %s\n", s.Category)
		fmt.Printf("Difficulty:  %s\n", s.Difficulty.Label())
		fmt.Printf("Time limit:  %d min\n", s.EstimatedMins)
		fmt.Printf("Pass score:  %d\n", s.PassThreshold)
		if len(s.Tags) > 0 {
			fmt.Printf("Covers:      %s\n", strings.Join(s.Tags, ", "))
		}
		fmt.Println()
		fmt.Println(s.Description)
		return nil
	},
}

func printSkillTable(list []skills.Skill) {
	// Header.
	fmt.Printf("%-24s  %-32s  %-20s  %-8s  %4s  %4s\n",
		"ID", "Name", "Category", "Level", "Mins", "Pass")
	fmt.Println(strings.Repeat("─", 102))

	for _, s := range list {
		name := s.Name
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		fmt.Printf("%-24s  %-32s  %-20s  %-8s  %4d  %4d\n",
			s.ID, name, s.Category, s.Difficulty.Label(),
			s.EstimatedMins, s.PassThreshold)
	}

	fmt.Printf("\n%d skills\n", len(list))
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. Blockchain)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillSearchCmd)
	skillCmd.AddCommand(skillShowCmd)
}
