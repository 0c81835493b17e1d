package services

import (
	"github.com/adilshaik/uga-nutrition-app/config"
	"github.com/adilshaik/uga-nutrition-app/models"
)

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	DiningPreference    *string `json:"dining_preference"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
}

func UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.DiningPreference != nil {
		user.DiningPreference = *upd.DiningPreference
	}
	if upd.DietaryRestrictions != nil {
		user.DietaryRestrictions = *upd.DietaryRestrictions
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
