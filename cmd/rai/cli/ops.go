package cli

import (
	"github.com/spf13/cobra"

	rai "github.com/raihq/rai-go"
)

func init() {
	findCmd := &cobra.Command{
		Use:   "find <query-json>",
		Short: "Find documents matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseJSON[rai.Query](args[0], "query")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			docs, err := client.Find(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printResult(docs)
		},
	}

	findOneCmd := &cobra.Command{
		Use:   "find-one <query-json>",
		Short: "Find the first document matching a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseJSON[rai.Query](args[0], "query")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.FindOne(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printResult(doc)
		},
	}

	insertCmd := &cobra.Command{
		Use:   "insert <document-json>",
		Short: "Insert a single document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseJSON[rai.Document](args[0], "document")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			created, err := client.Create(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return printResult(created)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <query-json> <update-json>",
		Short: "Update the first document matching a query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseJSON[rai.Query](args[0], "query")
			if err != nil {
				return err
			}
			update, err := parseJSON[rai.Update](args[1], "update")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			all, _ := cmd.Flags().GetBool("all")
			var result rai.Document
			if all {
				result, err = client.UpdateMany(cmd.Context(), query, update)
			} else {
				result, err = client.Update(cmd.Context(), query, update)
			}
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	updateCmd.Flags().Bool("all", false, "update every matching document")

	deleteCmd := &cobra.Command{
		Use:   "delete <query-json>",
		Short: "Soft-delete the first document matching a query",
		Long: `Soft-delete marks the matching document as deleted without removing it.
Use --hard to permanently remove documents instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseJSON[rai.Query](args[0], "query")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			hard, _ := cmd.Flags().GetBool("hard")
			all, _ := cmd.Flags().GetBool("all")

			var result rai.Document
			switch {
			case hard && all:
				result, err = client.DeleteMany(cmd.Context(), query)
			case hard:
				result, err = client.DeleteOne(cmd.Context(), query)
			default:
				result, err = client.Delete(cmd.Context(), query)
			}
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	deleteCmd.Flags().Bool("hard", false, "permanently remove instead of soft-deleting")
	deleteCmd.Flags().Bool("all", false, "with --hard, remove every matching document")

	aggregateCmd := &cobra.Command{
		Use:   "aggregate <pipeline-json>",
		Short: "Run an aggregation pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := parseJSON[rai.Pipeline](args[0], "pipeline")
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			docs, err := client.Aggregate(cmd.Context(), pipeline)
			if err != nil {
				return err
			}
			return printResult(docs)
		},
	}

	rootCmd.AddCommand(findCmd, findOneCmd, insertCmd, updateCmd, deleteCmd, aggregateCmd)
}
