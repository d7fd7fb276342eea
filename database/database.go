package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type Database struct {
	db               *gorm.DB
	activityRepo     *ActivityRepo
	articleRepo      *ArticleRepo
	contactRepo      *ContactRepo
	educationRepo    *EducationRepo
	experienceRepo   *ExperienceRepo
	organizationRepo *OrganizationRepo
	profileRepo      *ProfileRepo
	projectRepo      *ProjectRepo
	serviceRepo      *ServiceRepo
	skillRepo        *SkillRepo
	socialMediaRepo  *SocialMediaRepo
	userRepo         *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		activityRepo:     NewActivityRepo(db),
		articleRepo:      NewArticleRepo(db),
		contactRepo:      NewContactRepo(db),
		educationRepo:    NewEducationRepo(db),
		experienceRepo:   NewExperienceRepo(db),
		organizationRepo: NewOrganizationRepo(db),
		profileRepo:      NewProfileRepo(db),
		projectRepo:      NewProjectRepo(db),
		serviceRepo:      NewServiceRepo(db),
		skillRepo:        NewSkillRepo(db),
		socialMediaRepo:  NewSocialMediaRepo(db),
		userRepo:         NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ActivityRepo() *ActivityRepo         { return d.activityRepo }
func (d Database) ArticleRepo() *ArticleRepo           { return d.articleRepo }
func (d Database) ContactRepo() *ContactRepo           { return d.contactRepo }
func (d Database) EducationRepo() *EducationRepo       { return d.educationRepo }
func (d Database) ExperienceRepo() *ExperienceRepo     { return d.experienceRepo }
func (d Database) OrganizationRepo() *OrganizationRepo { return d.organizationRepo }
func (d Database) ProfileRepo() *ProfileRepo           { return d.profileRepo }
func (d Database) ProjectRepo() *ProjectRepo           { return d.projectRepo }
func (d Database) ServiceRepo() *ServiceRepo           { return d.serviceRepo }
func (d Database) SkillRepo() *SkillRepo               { return d.skillRepo }
func (d Database) SocialMediaRepo() *SocialMediaRepo   { return d.socialMediaRepo }
func (d Database) UserRepo() *UserRepo                 { return d.userRepo }

// Migrate creates or alters tables for every model.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(models.All()...)
}

func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
