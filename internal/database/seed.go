package database

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// DemoOrganizations returns the demo catalog used on fresh installs
func DemoOrganizations() []models.Organization {
	return []models.Organization{
		{ID: "org1", Name: "TechFlow Solutions", Industry: "Technology", Description: "Leading technology solutions provider"},
		{ID: "org2", Name: "Green Café", Industry: "Food & Beverage", Description: "Sustainable coffee and healthy food"},
		{ID: "org3", Name: "EduSmart", Industry: "Education", Description: "Online learning platform"},
		{ID: "org4", Name: "HealthPlus Clinic", Industry: "Healthcare", Description: "Modern healthcare services"},
		{ID: "org5", Name: "StyleHub", Industry: "Retail", Description: "Fashion and lifestyle products"},
	}
}

func DemoProducts() []models.Product {
	return []models.Product{
		{ID: "prod1", OrganizationID: "org1", Name: "Smart Analytics Dashboard", Description: "AI-powered business analytics", Price: 15000, Category: "Software", TargetAudience: "SME Business Owners", Features: pq.StringArray{"Real-time data", "AI insights", "Custom reports"}},
		{ID: "prod2", OrganizationID: "org1", Name: "Cloud Security Suite", Description: "Enterprise security solution", Price: 25000, Category: "Software", TargetAudience: "Tech Enthusiasts", Features: pq.StringArray{"Advanced encryption", "24/7 monitoring", "Threat detection"}},
		{ID: "prod3", OrganizationID: "org2", Name: "Organic Coffee Blend", Description: "Premium organic coffee beans", Price: 450, Category: "Beverage", TargetAudience: "Health-Conscious Consumers", Features: pq.StringArray{"100% organic", "Fair trade", "Rich flavor"}},
		{ID: "prod4", OrganizationID: "org2", Name: "Healthy Meal Box", Description: "Weekly healthy meal subscription", Price: 1200, Category: "Food", TargetAudience: "Young Professionals (25–34)", Features: pq.StringArray{"Nutritionist approved", "Fresh ingredients", "Convenient delivery"}},
		{ID: "prod5", OrganizationID: "org3", Name: "Digital Learning Kit", Description: "Complete online learning package", Price: 2500, Category: "Education", TargetAudience: "Students", Features: pq.StringArray{"Interactive content", "Progress tracking", "Certificate included"}},
		{ID: "prod6", OrganizationID: "org4", Name: "Health Monitoring Device", Description: "Personal health tracker", Price: 3500, Category: "Medical Device", TargetAudience: "Health-Conscious Consumers", Features: pq.StringArray{"24/7 monitoring", "Mobile app", "Doctor consultation"}},
		{ID: "prod7", OrganizationID: "org5", Name: "Premium Fashion Collection", Description: "Luxury clothing line", Price: 2800, Category: "Fashion", TargetAudience: "Young Women (18–30)", Features: pq.StringArray{"Designer quality", "Sustainable materials", "Limited edition"}},
		{ID: "prod8", OrganizationID: "org5", Name: "Smart Accessories", Description: "Tech-enabled fashion accessories", Price: 1500, Category: "Accessories", TargetAudience: "Millennials (25–40)", Features: pq.StringArray{"Smart features", "Stylish design", "Long battery life"}},
	}
}

func DemoServices() []models.Service {
	return []models.Service{
		{ID: "serv1", OrganizationID: "org1", Name: "IT Consulting", Description: "Professional IT consultation services", Price: 5000, Duration: "1 month", TargetAudience: "SME Business Owners", Features: pq.StringArray{"Expert advice", "Custom solutions", "Ongoing support"}},
		{ID: "serv2", OrganizationID: "org1", Name: "Digital Transformation", Description: "Complete digital transformation package", Price: 50000, Duration: "6 months", TargetAudience: "Tech Enthusiasts", Features: pq.StringArray{"Full assessment", "Implementation plan", "Training included"}},
		{ID: "serv3", OrganizationID: "org2", Name: "Catering Service", Description: "Healthy catering for events", Price: 800, Duration: "Per event", TargetAudience: "Working Moms / Dads", Features: pq.StringArray{"Healthy options", "Custom menus", "Professional service"}},
		{ID: "serv4", OrganizationID: "org3", Name: "Online Tutoring", Description: "Personalized online tutoring", Price: 1500, Duration: "1 month", TargetAudience: "Students", Features: pq.StringArray{"One-on-one sessions", "Flexible schedule", "Progress reports"}},
		{ID: "serv5", OrganizationID: "org3", Name: "Corporate Training", Description: "Professional development programs", Price: 25000, Duration: "3 months", TargetAudience: "SME Business Owners", Features: pq.StringArray{"Customized curriculum", "Expert trainers", "Certification"}},
		{ID: "serv6", OrganizationID: "org4", Name: "Health Checkup Package", Description: "Comprehensive health screening", Price: 3500, Duration: "1 day", TargetAudience: "Working Moms / Dads", Features: pq.StringArray{"Full body checkup", "Lab tests", "Doctor consultation"}},
		{ID: "serv7", OrganizationID: "org4", Name: "Wellness Program", Description: "Corporate wellness services", Price: 15000, Duration: "6 months", TargetAudience: "Health-Conscious Consumers", Features: pq.StringArray{"Fitness plans", "Nutrition guidance", "Regular monitoring"}},
		{ID: "serv8", OrganizationID: "org5", Name: "Personal Styling", Description: "Professional styling consultation", Price: 2500, Duration: "2 hours", TargetAudience: "Young Women (18–30)", Features: pq.StringArray{"Style assessment", "Wardrobe planning", "Shopping assistance"}},
	}
}

// SeedDemoData inserts the demo catalog. Rows that already exist are left untouched.
func SeedDemoData(db *gorm.DB) error {
	orgs := DemoOrganizations()
	products := DemoProducts()
	services := DemoServices()

	err := db.Transaction(func(tx *gorm.DB) error {
		ignore := tx.Clauses(clause.OnConflict{DoNothing: true})
		if err := ignore.Create(&orgs).Error; err != nil {
			return fmt.Errorf("failed to seed organizations: %w", err)
		}
		if err := ignore.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		if err := ignore.Create(&services).Error; err != nil {
			return fmt.Errorf("failed to seed services: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"organizations": len(orgs),
		"products":      len(products),
		"services":      len(services),
	}).Info("Demo data seeded")
	return nil
}
