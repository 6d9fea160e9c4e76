package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/martijn/bloglist/internal/core/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for the stored blogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		blogs, err := services.BlogRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list blogs: %w", err)
		}

		if len(blogs) == 0 {
			fmt.Println("No blogs stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Blogs\t%d\n", len(blogs))
		fmt.Fprintf(w, "Total likes\t%d\n", stats.TotalLikes(blogs))

		if favorite := stats.FavoriteBlog(blogs); favorite != nil {
			fmt.Fprintf(w, "Favorite blog\t%s (%d likes)\n", favorite.Title, favorite.Likes)
		}
		if top := stats.MostBlogs(blogs); top != nil {
			fmt.Fprintf(w, "Most blogs\t%s (%d)\n", top.Author, top.Blogs)
		}
		if top := stats.MostLikes(blogs); top != nil {
			fmt.Fprintf(w, "Most likes\t%s (%d)\n", top.Author, top.Likes)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
