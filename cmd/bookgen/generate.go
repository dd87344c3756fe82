package main

import (
	"fmt"

	"bookfaker/internal/book"
	"bookfaker/internal/locale"
	"bookfaker/internal/logging"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type generateArgs struct {
	seed       int64
	locale     string
	likesAvg   float64
	reviewsAvg float64
	offset     int
	limit      int
	pretty     bool
}

func newGenerateCmd() *cobra.Command {
	var args generateArgs
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a batch of generated records as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, args)
		},
	}
	f := cmd.Flags()
	f.Int64VarP(&args.seed, "seed", "s", book.DefaultSeed, "global seed")
	f.StringVarP(&args.locale, "locale", "l", locale.Default.String(), "locale: en, tr, ru, zh")
	f.Float64Var(&args.likesAvg, "likes", book.DefaultLikesAvg, "average likes per record")
	f.Float64Var(&args.reviewsAvg, "reviews", book.DefaultReviewsAvg, "average reviews per record")
	f.IntVar(&args.offset, "offset", book.DefaultOffset, "records to skip")
	f.IntVarP(&args.limit, "limit", "n", book.DefaultLimit, "records to generate")
	f.BoolVar(&args.pretty, "pretty", false, "indent the output")
	return cmd
}

func runGenerate(cmd *cobra.Command, args generateArgs) error {
	l := locale.Parse(args.locale)
	if l.String() != args.locale {
		logging.Warn().Str("requested", args.locale).Str("locale", l.String()).Msg("locale normalized")
	}

	q := book.Query{
		Params: book.Params{
			Seed:       args.seed,
			Locale:     l,
			LikesAvg:   args.likesAvg,
			ReviewsAvg: args.reviewsAvg,
		},
		Offset: args.offset,
		Limit:  args.limit,
	}
	if err := q.Validate(); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if args.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(map[string][]book.Record{"books": book.Batch(q)})
}
