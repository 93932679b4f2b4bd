package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nachofazah/Ciu-RedSocial/config"
	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/logging"
	"github.com/nachofazah/Ciu-RedSocial/internal/seed"
)

var seedOpts seed.Options

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the backend with fake users, posts and comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		log := logging.New(cfg.LogLevel, cfg.AppEnv)
		if seedOpts.Seed == 0 {
			seedOpts.Seed = time.Now().UnixNano()
		}

		client := api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.APITimeout))
		rep, err := seed.Run(cmd.Context(), client, seedOpts, log)
		if err != nil {
			return err
		}
		log.WithField("users", rep.Users).
			WithField("posts", rep.Posts).
			WithField("images", rep.Images).
			WithField("comments", rep.Comments).
			Info("seed done")
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Users, "users", 5, "users to create")
	seedCmd.Flags().IntVar(&seedOpts.PostsPerUser, "posts", 3, "posts per user")
	seedCmd.Flags().IntVar(&seedOpts.CommentsPerPost, "comments", 2, "comments per post")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", 0, "random seed (0 = time based)")
	RootCmd.AddCommand(seedCmd)
}
