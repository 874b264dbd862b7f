package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhowell/go-timetrack/internal/core/settings"
)

var (
	projectSphere string
	projectNote   string
	projectGoal   string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

// projectService resolves the --in sphere, defaulting to the settings
// default sphere when the flag is not given.
func projectService() (*settings.Service, string, error) {
	svc, err := openService()
	if err != nil {
		return nil, "", err
	}
	sphere := projectSphere
	if sphere == "" {
		def, ok := svc.Snapshot().DefaultSphere()
		if !ok {
			return nil, "", fmt.Errorf("no default sphere configured, pass --in")
		}
		sphere = def.Name
	}
	return svc, sphere, nil
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in a sphere",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		snap := svc.Snapshot()
		for _, p := range snap.SphereProjects(sphere) {
			marks := ""
			if p.IsDefault {
				marks += " [default]"
			}
			if !p.Active {
				marks += " [archived]"
			}
			fmt.Printf("%s%s\n", p.Name, marks)
		}
		return nil
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		return svc.AddProject(args[0], sphere, projectNote, projectGoal)
	},
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		return svc.RenameProject(args[0], args[1], sphere)
	},
}

var projectArchiveCmd = &cobra.Command{
	Use:   "archive <name>",
	Short: "Archive a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		return svc.SetProjectActive(args[0], sphere, false)
	},
}

var projectRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore an archived project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		return svc.SetProjectActive(args[0], sphere, true)
	},
}

var projectDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Make a project its sphere's default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		return svc.SetDefaultProject(args[0], sphere)
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, sphere, err := projectService()
		if err != nil {
			return err
		}
		return svc.DeleteProject(args[0], sphere)
	},
}

func init() {
	projectCmd.PersistentFlags().StringVar(&projectSphere, "in", "",
		"Sphere the project belongs to (defaults to the default sphere)")
	projectAddCmd.Flags().StringVar(&projectNote, "note", "", "Project note")
	projectAddCmd.Flags().StringVar(&projectGoal, "goal", "", "Project goal")

	projectCmd.AddCommand(projectListCmd, projectAddCmd, projectRenameCmd,
		projectArchiveCmd, projectRestoreCmd, projectDefaultCmd, projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
