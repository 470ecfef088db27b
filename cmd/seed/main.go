package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/infra/readstore"
	"cowork-booking/internal/infra/repository"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/infra/uow"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/password"
	"cowork-booking/internal/pkg/ptr"
	"cowork-booking/internal/usecase/shared"

	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	AdminEmail     string `envconfig:"SEED_ADMIN_EMAIL" default:"admin@coworking.com"`
	AdminPassword  string `envconfig:"SEED_ADMIN_PASSWORD" default:"Admin123!"`
	ClientEmail    string `envconfig:"SEED_CLIENT_EMAIL" default:"client@coworking.com"`
	ClientPassword string `envconfig:"SEED_CLIENT_PASSWORD" default:"Client123!"`
}

type roomSeed struct {
	name        string
	description string
	capacity    int
	priceCents  int64
	imageURL    string
}

var demoRooms = []roomSeed{
	{
		name:        `Boardroom "Visionary"`,
		description: "Executive meeting room with city views, an 85\" display, video conferencing and a glass whiteboard.",
		capacity:    12,
		priceCents:  4500,
		imageURL:    "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=1200&q=80",
	},
	{
		name:        `Private Office "Executive"`,
		description: "Furnished office for small teams with biometric access and sound insulation.",
		capacity:    4,
		priceCents:  2500,
		imageURL:    "https://images.unsplash.com/photo-1497366811353-6870744d04b2?auto=format&fit=crop&w=1200&q=80",
	},
	{
		name:        `Hot Desk "Creative Hub"`,
		description: "Shared desk in a bright industrial space with gigabit internet and lounge access.",
		capacity:    1,
		priceCents:  500,
		imageURL:    "https://images.unsplash.com/photo-1524758631624-e2822e304c36?auto=format&fit=crop&w=1200&q=80",
	},
	{
		name:        `Auditorium "Summit"`,
		description: "Flexible space for workshops and launches with a 4K laser projector and modular seating.",
		capacity:    50,
		priceCents:  12000,
		imageURL:    "https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&w=1200&q=80",
	},
	{
		name:        `Studio "Podcast Pro"`,
		description: "Acoustically treated studio with four broadcast microphones and a mixing console.",
		capacity:    4,
		priceCents:  3500,
		imageURL:    "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?auto=format&fit=crop&w=1200&q=80",
	},
	{
		name:        `Lounge "The Garden"`,
		description: "Quiet area surrounded by plants for casual work or brainstorming.",
		capacity:    8,
		priceCents:  1500,
		imageURL:    "https://images.unsplash.com/photo-1524758631624-e2822e304c36?auto=format&fit=crop&w=1200&q=80",
	},
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("seed failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	var cfg seedConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlc.New()
	unit := uow.NewPostgresUoW(pool, q, config.Config{DB: dbCfg})

	if err := seedRooms(ctx, unit, readstore.NewRoomReadStore(q, pool)); err != nil {
		return err
	}

	users := repository.NewUserRepository(q)
	if err := seedUser(ctx, unit, pool, users, "Admin User", cfg.AdminEmail, cfg.AdminPassword, user.RoleAdmin); err != nil {
		return err
	}
	return seedUser(ctx, unit, pool, users, "Demo Client", cfg.ClientEmail, cfg.ClientPassword, user.RoleClient)
}

func seedRooms(ctx context.Context, unit shared.UnitOfWork, rooms *readstore.RoomReadStore) error {
	existing, err := rooms.FindAll(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("rooms already present, skipping", "count", len(existing))
		return nil
	}

	return unit.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range demoRooms {
			gallery := []room.Media{{URL: s.imageURL, Type: room.MediaImage}}
			rm, err := room.NewRoom(s.name, ptr.Of(s.description), s.capacity, s.priceCents, ptr.Of(s.imageURL), gallery)
			if err != nil {
				return err
			}
			if err := tx.Rooms().Create(ctx, tx.DB(), rm); err != nil {
				return err
			}
		}
		slog.Info("rooms created", "count", len(demoRooms))
		return nil
	})
}

func seedUser(ctx context.Context, unit shared.UnitOfWork, conn sqlc.DBTX, users *repository.UserRepository, name, email, plain string, role user.Role) error {
	n, err := user.NewName(name)
	if err != nil {
		return err
	}
	creds, err := user.NewCredentials(email, plain)
	if err != nil {
		return err
	}

	_, err = users.FindByEmail(ctx, conn, creds.Email())
	switch {
	case err == nil:
		slog.Info("user already present, skipping", "email", creds.Email().Value())
		return nil
	case !infra.IsKind(err, infra.KindNotFound):
		return err
	}

	hash, err := password.Hash(creds.Password().Value())
	if err != nil {
		return err
	}

	u := user.NewUser(n, creds.Email(), hash, role)
	if err := unit.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	}); err != nil {
		return err
	}
	slog.Info("user created", "email", u.Email().Value(), "role", role.String())
	return nil
}
