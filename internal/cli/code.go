package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Exam code commands",
	}

	cmd.AddCommand(newCodeGenerateCmd())
	cmd.AddCommand(newCodeListCmd())
	cmd.AddCommand(newCodeVerifyCmd())

	return cmd
}

func newCodeGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a new exam code",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GeneratedCode

			if err := client.Post("/api/proctor/generate_code", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCodeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all issued exam codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CodeList

			if err := client.Get("/api/proctor/codes", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCodeVerifyCmd() *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "verify <code>",
		Short: "Verify an exam code as a student would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if student == "" {
				return fmt.Errorf("--student is required")
			}

			req := map[string]string{
				"code":       args[0],
				"student_id": student,
			}
			var result struct {
				Message string `json:"message"`
			}

			if err := client.Post("/api/exam/verify_code", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&student, "student", "", "Student identifier (required)")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
