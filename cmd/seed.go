package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"affiliate-escrow/internal/db"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fund demo parties and mint a demo NFT",
		Long: "Writes three funded demo parties (company, influencer, buyer) and gives the " +
			"company one unit of a demo asset. Only useful with a persistent ledger.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			ledger, closeLedger, err := db.OpenLedger(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeLedger()

			data := db.DefaultSeed()
			if err = db.Seed(cmd.Context(), ledger, data); err != nil {
				return err
			}
			for _, p := range []db.SeedParty{data.Company, data.Influencer, data.Buyer} {
				logger.Info("seeded party",
					slog.String("role", p.Role),
					slog.String("address", p.Address.String()),
					slog.Uint64("lamports", p.Lamports),
				)
			}
			logger.Info("seeded asset", slog.String("asset", data.Asset.String()), slog.String("holder", data.Company.Address.String()))
			return nil
		},
	}
}
