package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pycargo/internal/config"
	"pycargo/internal/fetch"
	"pycargo/internal/gitcfg"
	"pycargo/internal/github"
	"pycargo/internal/pipeline"
	"pycargo/internal/runner"
	"pycargo/internal/template"
	"pycargo/internal/ui"
)

// Flag storage for the `new` command.
var (
	setupTemplate  string // -s/--setup: which requirements template to use
	githubRepo     bool   // -g/--github-repo: create a GitHub repo and push
	githubRepoName string // --github-repo-name: custom remote repo name
	private        bool   // -p/--private: remote repo visibility
	templatesFile  string // --templates: optional YAML overlay of custom templates
)

// newCmd bootstraps a project: it resolves the request, wires the pipeline's
// collaborators, and runs the step sequence. All validation happens before
// the pipeline touches the filesystem.
var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Bootstrap a new Python project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := template.Builtin()
		if templatesFile != "" {
			if err := store.LoadOverlay(templatesFile); err != nil {
				return err
			}
		}

		req, err := config.Resolve(config.Options{
			Name:     args[0],
			Setup:    setupTemplate,
			GitHub:   githubRepo,
			RepoName: githubRepoName,
			Private:  private,
		}, store)
		if err != nil {
			return err
		}

		exec := runner.Exec{}

		p := pipeline.New()
		p.Runner = exec
		p.Fetcher = &fetch.HTTP{}
		p.Identity = &gitcfg.Git{Runner: exec}
		p.Prompt = &gitcfg.StdinPrompt{}
		p.Templates = store
		p.Repos = github.NewClient(os.Getenv(config.TokenEnv))
		p.Reporter = ui.NewConsole()

		return p.Run(req)
	},
}

// init sets up CLI flags and registers the `new` command with the root command.
func init() {
	newCmd.Flags().StringVarP(&setupTemplate, "setup", "s", "advanced",
		"Setup template: basic, advanced, data-science, or blank")
	newCmd.Flags().BoolVarP(&githubRepo, "github-repo", "g", false,
		"Create a GitHub repository and push the initial commit")
	newCmd.Flags().StringVar(&githubRepoName, "github-repo-name", "",
		"Custom name for the GitHub repository (defaults to the project name)")
	newCmd.Flags().BoolVarP(&private, "private", "p", false,
		"Make the GitHub repository private")
	newCmd.Flags().StringVar(&templatesFile, "templates", "",
		"Path to a YAML file with custom requirements templates")

	rootCmd.AddCommand(newCmd)
}
