package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wacblog/app/services"
	"wacblog/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// queryViews maps a query name to the store operation that produces it.
var queryViews = map[string]func(*services.Store) (interface{}, error){
	"featured":   func(s *services.Store) (interface{}, error) { return s.FeaturedPosts() },
	"popular":    func(s *services.Store) (interface{}, error) { return s.PopularPosts() },
	"trending":   func(s *services.Store) (interface{}, error) { return s.TrendingPosts() },
	"recommend":  func(s *services.Store) (interface{}, error) { return s.DailyRecommendations() },
	"posts":      func(s *services.Store) (interface{}, error) { return s.AllPosts() },
	"categories": func(s *services.Store) (interface{}, error) { return s.Categories(), nil },
	"keywords":   func(s *services.Store) (interface{}, error) { return s.HotKeywords(), nil },
}

func newQueryCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	// withStore opens a freshly seeded store, runs fn and prints its result.
	withStore := func(cmd *cobra.Command, fn func(*services.Store) (interface{}, error)) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, closeFn, err := OpenStore(cfg.Storage, zap.NewNop())
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := fn(store)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	}

	names := make([]string, 0, len(queryViews))
	for name := range queryViews {
		names = append(names, name)
	}

	query := &cobra.Command{
		Use:       "query <featured|popular|trending|recommend|posts|categories|keywords>",
		Short:     "Print a view of the seeded content as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, ok := queryViews[args[0]]
			if !ok {
				return fmt.Errorf("unknown view %q", args[0])
			}
			return withStore(cmd, view)
		},
	}

	query.AddCommand(
		&cobra.Command{
			Use:   "search <text>",
			Short: "Search posts by title, excerpt and tags",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text := strings.Join(args, " ")
				return withStore(cmd, func(s *services.Store) (interface{}, error) {
					return s.SearchPosts(text)
				})
			},
		},
		&cobra.Command{
			Use:   "category <id>",
			Short: "List the posts of a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, func(s *services.Store) (interface{}, error) {
					return s.PostsByCategory(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "comments <postId>",
			Short: "List the comments of a post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				postID, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid post id %q", args[0])
				}
				return withStore(cmd, func(s *services.Store) (interface{}, error) {
					return s.CommentsByPost(postID)
				})
			},
		},
	)
	return query
}
