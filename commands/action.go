package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var actionNotes string

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Manage break actions",
}

var actionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List break actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		for _, a := range svc.Snapshot().BreakActions {
			marks := ""
			if a.IsDefault {
				marks += " [default]"
			}
			if !a.Active {
				marks += " [archived]"
			}
			fmt.Printf("%s%s\n", a.Name, marks)
		}
		return nil
	},
}

var actionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a break action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.AddBreakAction(args[0], actionNotes)
	},
}

var actionRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a break action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.RenameBreakAction(args[0], args[1])
	},
}

var actionArchiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Archive a break action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.SetBreakActionActive(args[0], false)
	},
}

var actionRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore an archived break action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.SetBreakActionActive(args[0], true)
	},
}

var actionDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Make a break action the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.SetDefaultBreakAction(args[0])
	},
}

var actionDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a break action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.DeleteBreakAction(args[0])
	},
}

func init() {
	actionAddCmd.Flags().StringVar(&actionNotes, "notes", "", "Break action notes")

	actionCmd.AddCommand(actionListCmd, actionAddCmd, actionRenameCmd,
		actionArchiveCmd, actionRestoreCmd, actionDefaultCmd, actionDeleteCmd)
	rootCmd.AddCommand(actionCmd)
}
