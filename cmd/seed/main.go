// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"solkit/internal/domain/auth"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
	"solkit/internal/infrastructure/storage/postgres"
	"solkit/internal/infrastructure/storage/postgres/auth_repo"
	"solkit/internal/infrastructure/storage/postgres/catalog_repo"
	"solkit/internal/infrastructure/storage/postgres/project_repo"
	"solkit/internal/migrations"
	"solkit/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("connected to database")

	if err := migrations.Up(pool.Unwrap()); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	txManager := postgres.NewTxManager(pool)

	if err := seedAdminUser(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, txManager, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@solkit.fr"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	users := auth_repo.NewUserRepo(txManager)

	if existing, err := users.GetByEmail(ctx, adminEmail); err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existing.ID)
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := auth.NewUser(adminEmail, string(passwordHash))
	admin.FirstName = "System"
	admin.LastName = "Admin"
	admin.Role = auth.RoleAdmin

	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", admin.ID)
	return nil
}

// seedDemoData creates a small demo catalog: three products across pricing
// generations, one kit and one project.
func seedDemoData(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	productRepo := catalog_repo.NewProductRepo(txManager)
	kitRepo := catalog_repo.NewKitRepo(txManager, productRepo)
	projectRepo := project_repo.NewProjectRepo(txManager, kitRepo)

	productService := product.NewService(productRepo, txManager)
	kitService := kit.NewService(kitRepo, txManager)
	projectService := project.NewService(projectRepo, txManager)

	if exists, err := productRepo.ExistsByCode(ctx, "PAN-400"); err == nil && exists {
		log.Info("demo data already present, skipping")
		return nil
	}

	panel := product.New("PAN-400", "Panneau solaire 400W")
	panel.SurfaceM2 = fptr(1.95)
	panel.StockQuantity = 120
	panel.PurchaseCost = fptr(140)
	panel.PurchaseUnitPrice = fptr(180)
	panel.PurchaseSellPrice = fptr(219.99)
	panel.RentalCost1Y = fptr(28)
	panel.RentalUnitPrice1Y = fptr(36)
	panel.RentalSellPrice1Y = fptr(44)
	panel.RentalSellPrice3Y = fptr(38)
	panel.PurchaseClimateChange = fptr(410)
	panel.PurchaseResourceDepletion = fptr(5200)
	panel.PurchaseAcidification = fptr(2.1)
	panel.PurchaseEutrophication = fptr(0.8)
	panel.RentalClimateChange = fptr(55)

	// Mid-migration: purchase data still on the deprecated 1-year fields.
	inverter := product.New("INV-5K", "Onduleur hybride 5kW")
	inverter.StockQuantity = 35
	inverter.DeprecatedPurchaseCost1Y = fptr(620)
	inverter.DeprecatedPurchaseUnitPrice1Y = fptr(790)
	inverter.DeprecatedPurchaseSellPrice1Y = fptr(949)
	inverter.LegacyClimateChange = fptr(320)
	inverter.LegacyResourceDepletion = fptr(4100)

	// Never migrated: only the legacy export fields are filled.
	mount := product.New("FIX-RAIL", "Rail de fixation aluminium")
	mount.StockQuantity = 400
	mount.LegacyCost1Y = fptr(12)
	mount.LegacyUnitPrice1Y = fptr(16)
	mount.LegacySellPrice1Y = fptr(19.5)

	for _, p := range []*product.Product{panel, inverter, mount} {
		if err := productService.Create(ctx, p); err != nil {
			return fmt.Errorf("create product %s: %w", p.Code, err)
		}
	}

	demoKit := kit.New("KIT-RES-8", "Kit résidentiel 8 panneaux", kit.StyleResidential)
	demoKit.Lines = []kit.Line{
		kit.NewLine(demoKit.ID, panel.ID, 8),
		kit.NewLine(demoKit.ID, inverter.ID, 1),
		kit.NewLine(demoKit.ID, mount.ID, 16),
	}
	if err := kitService.SaveWithLines(ctx, demoKit, true); err != nil {
		return fmt.Errorf("create kit: %w", err)
	}

	demoProject := project.New("Maison Dupont", "Famille Dupont")
	demoProject.Lines = []project.Line{
		project.NewLine(demoProject.ID, demoKit.ID, 1),
	}
	if err := projectService.Create(ctx, demoProject); err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	log.Infow("demo data created",
		"products", 3,
		"kit", demoKit.Code,
		"project", demoProject.Name,
	)
	return nil
}

func fptr(v float64) *float64 { return &v }
