package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "Manage spheres",
}

var sphereListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spheres",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		for _, sp := range svc.Snapshot().Spheres {
			marks := ""
			if sp.IsDefault {
				marks += " [default]"
			}
			if !sp.Active {
				marks += " [archived]"
			}
			fmt.Printf("%s%s\n", sp.Name, marks)
		}
		return nil
	},
}

var sphereAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a sphere",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.AddSphere(args[0])
	},
}

var sphereRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a sphere (projects follow)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.RenameSphere(args[0], args[1])
	},
}

var sphereArchiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Archive a sphere (its projects keep their own flags)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.SetSphereActive(args[0], false)
	},
}

var sphereRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore an archived sphere",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.SetSphereActive(args[0], true)
	},
}

var sphereDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Make a sphere the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.SetDefaultSphere(args[0])
	},
}

var sphereDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a sphere and all its projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		return svc.DeleteSphere(args[0])
	},
}

func init() {
	sphereCmd.AddCommand(sphereListCmd, sphereAddCmd, sphereRenameCmd,
		sphereArchiveCmd, sphereRestoreCmd, sphereDefaultCmd, sphereDeleteCmd)
	rootCmd.AddCommand(sphereCmd)
}
