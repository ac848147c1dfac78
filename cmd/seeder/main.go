//cmd/seeder/main.go
package main

import (
    "fmt"
    "log"
    "os"

    "github.com/joho/godotenv"

    "github.com/piebomber/piebomber-api/internal/config"
    "github.com/piebomber/piebomber-api/internal/db"
)

func main() {
    _ = godotenv.Load()

    cfg, err := config.Load()
    if err != nil {
        log.Fatal(err)
    }

    conn, err := db.Open(cfg.DatabaseURL)
    if err != nil {
        log.Fatal(err)
    }
    defer conn.Close()

    seedFiles := []string{
        "seed/menu_items.sql",
        "seed/events.sql",
    }

    for _, file := range seedFiles {
        content, err := os.ReadFile(file)
        if err != nil {
            log.Fatalf("failed to read %s: %v", file, err)
        }

        _, err = conn.Exec(string(content))
        if err != nil {
            log.Fatalf("failed to execute %s: %v", file, err)
        }
        fmt.Printf("Seeded: %s\n", file)
    }

    fmt.Println("Database seeding completed successfully!")
}
