package api

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

// Admin CRUD for the entities that need nothing beyond the shared rules.

func newActivityHandler(db database.Database, v *requestValidator) crudHandler[models.Activity, activityInput] {
	return newCRUDHandler[models.Activity, activityInput]("activityHandler", "Activity", db.ActivityRepo(), v)
}

func newEducationHandler(db database.Database, v *requestValidator) crudHandler[models.Education, educationInput] {
	return newCRUDHandler[models.Education, educationInput]("educationHandler", "Education", db.EducationRepo(), v)
}

func newExperienceHandler(db database.Database, v *requestValidator) crudHandler[models.Experience, experienceInput] {
	return newCRUDHandler[models.Experience, experienceInput]("experienceHandler", "Experience", db.ExperienceRepo(), v)
}

func newOrganizationHandler(db database.Database, v *requestValidator) crudHandler[models.Organization, organizationInput] {
	return newCRUDHandler[models.Organization, organizationInput]("organizationHandler", "Organization", db.OrganizationRepo(), v)
}

func newProjectHandler(db database.Database, v *requestValidator) crudHandler[models.Project, projectInput] {
	return newCRUDHandler[models.Project, projectInput]("projectHandler", "Project", db.ProjectRepo(), v)
}

func newSkillHandler(db database.Database, v *requestValidator) crudHandler[models.Skill, skillInput] {
	return newCRUDHandler[models.Skill, skillInput]("skillHandler", "Skill", db.SkillRepo(), v)
}
