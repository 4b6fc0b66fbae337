package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/ecoestate/internal/models"
)

func (c *Cli) runProperties(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("properties", flag.ContinueOnError)
	region := fs.String("region", "", "only properties in the region")
	status := fs.String("status", "", "available, reserved or sold")
	maxPrice := fs.Int64("max-price", 0, "price ceiling")
	minBedrooms := fs.Int("min-bedrooms", 0, "bedroom floor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := func(p models.Property) bool {
		if *region != "" && p.RegionID != *region {
			return false
		}
		if *status != "" && string(p.Status) != *status {
			return false
		}
		if *maxPrice > 0 && p.Price > *maxPrice {
			return false
		}
		if *minBedrooms > 0 && p.Bedrooms < *minBedrooms {
			return false
		}
		return true
	}

	properties, err := c.catalog.SearchProperties(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}

	c.io.Println("=== Properties ===")
	c.io.Println()

	if len(properties) == 0 {
		c.io.Println("No properties match.")
		return nil
	}

	c.io.Printf("Found %d propert(ies):\n", len(properties))
	c.io.Println()
	for i, p := range properties {
		c.io.Printf("%d. %s\n", i+1, p.Title)
		c.io.Printf("   ID:       %s\n", p.ID)
		c.io.Printf("   Region:   %s\n", p.RegionID)
		c.io.Printf("   Status:   %s\n", p.Status)
		c.io.Printf("   Price:    %s\n", formatPrice(p.Price))
		c.io.Printf("   Area:     %.1f m2, %d bedroom(s)\n", p.AreaSqm, p.Bedrooms)
		if len(p.EcoFeatureIDs) > 0 {
			c.io.Printf("   Features: %v\n", p.EcoFeatureIDs)
		}
		c.io.Println()
	}
	return nil
}

func (c *Cli) runRegions(ctx context.Context) error {
	regions, err := c.catalog.Regions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list regions: %w", err)
	}

	c.io.Println("=== Regions ===")
	c.io.Println()

	if len(regions) == 0 {
		c.io.Println("No regions cached. Run 'ecoestate refresh regions' while online.")
		return nil
	}

	for _, r := range regions {
		c.io.Printf("%s  %s (%s), average price %s\n",
			r.ID, r.Name, r.ClimateZone, formatPrice(r.AveragePrice))
	}
	return nil
}

func (c *Cli) runFeatures(ctx context.Context) error {
	features, err := c.catalog.EcoFeatures(ctx)
	if err != nil {
		return fmt.Errorf("failed to list eco features: %w", err)
	}

	c.io.Println("=== Eco Features ===")
	c.io.Println()

	if len(features) == 0 {
		c.io.Println("No eco features cached. Run 'ecoestate refresh eco_features' while online.")
		return nil
	}

	for _, f := range features {
		c.io.Printf("%s  %s [%s]", f.ID, f.Name, f.Category)
		if f.AnnualSavings > 0 {
			c.io.Printf(", saves %s/year", formatPrice(f.AnnualSavings))
		}
		c.io.Println()
	}
	return nil
}

func (c *Cli) runProjects(ctx context.Context) error {
	projects, err := c.catalog.Projects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	c.io.Println("=== Projects ===")
	c.io.Println()

	if len(projects) == 0 {
		c.io.Println("No projects found.")
		return nil
	}

	for i, p := range projects {
		c.io.Printf("%d. %s (client: %s)\n", i+1, p.ID, p.ClientName)
		c.io.Printf("   Property: %s\n", p.PropertyID)
		c.io.Printf("   Status:   %s\n", p.Status)
		done := 0
		for _, m := range p.Milestones {
			if m.Done {
				done++
			}
		}
		c.io.Printf("   Milestones: %d/%d done\n", done, len(p.Milestones))
		for _, m := range p.Milestones {
			mark := " "
			if m.Done {
				mark = "x"
			}
			c.io.Printf("     [%s] %s  %s\n", mark, m.ID, m.Name)
		}
		if len(p.Notes) > 0 {
			c.io.Printf("   Notes: %d\n", len(p.Notes))
			for _, n := range p.Notes {
				c.io.Printf("     - %s (%s): %s\n", n.Author, n.CreatedAt.Format("2006-01-02"), n.Text)
			}
		}
		c.io.Println()
	}
	return nil
}
