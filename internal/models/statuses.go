package models

type CricketRole string
type Gender string

const (
	CricketRoleBatsman    CricketRole = "batsman"
	CricketRoleBowler     CricketRole = "bowler"
	CricketRoleAllRounder CricketRole = "all-rounder"

	// CricketRoleAll - wildcard в фильтрах поиска, не хранится в БД
	CricketRoleAll CricketRole = "all"

	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)
