package cmd

import (
	"fmt"
	"strings"

	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-skill test statistics",
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

		stats, err := s.EventRepo().GradeStatsBySkill(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No graded attempts yet. Run a test first.")
			return nil
		}

		fmt.Printf("%-32s  %8s  %6s  %4s  %5s\n",
			"Skill", "Attempts", "Passes", "Best", "Avg")
		fmt.Println(strings.Repeat("─", 64))

		var totalAttempts, totalPasses int
		for _, st := range stats {
			name := st.SkillID
			if sk, err := skills.GetSkill(st.SkillID); err == nil {
				name = sk.Name
			}
			fmt.Printf("%-32s  %8d  %6d  %4d  %5.1f\n",
				truncate(name, 32), st.Attempts, st.Passes, st.BestScore, st.AvgScore)
			totalAttempts += st.Attempts
			totalPasses += st.Passes
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-32s  %8d  %6d\n", "TOTAL", totalAttempts, totalPasses)
		return nil
	},
}
