package controllers

import (
	"strconv"
	"time"

	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/gin-gonic/gin"
)

// GetAvailability returns the bookable slots for a date. An absent date is a
// normal condition the booking UI renders as "no schedule", not a hard error.
func GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.BadRequest(c, "date query parameter is required", nil)
		return
	}

	availability, free, err := fetchAvailability(date)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	utils.Success(c, "Availability retrieved successfully", gin.H{
		"id":    availability.ID,
		"date":  availability.Date,
		"slots": free,
	})
}

// SetAvailability upserts the slot set for a date
func SetAvailability(c *gin.Context) {
	utils.LogInfo("SetAvailability called")

	var req struct {
		Date  string   `json:"date" binding:"required"`
		Slots []string `json:"slots"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid availability payload: %v", err)
		utils.BadRequest(c, "Date is required", err.Error())
		return
	}

	availability, err := upsertAvailability(req.Date, req.Slots)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	slots := make([]string, 0, len(availability.Slots))
	for _, slot := range availability.Slots {
		if !slot.Booked {
			slots = append(slots, slot.Time)
		}
	}

	utils.LogInfo("Availability for %s saved with %d open slots", availability.Date, len(slots))
	utils.Success(c, "Availability saved successfully", gin.H{
		"id":    availability.ID,
		"date":  availability.Date,
		"slots": slots,
	})
}

// DeleteAvailability removes a whole availability record by id
func DeleteAvailability(c *gin.Context) {
	utils.LogInfo("DeleteAvailability called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid availability ID: %v", err)
		utils.BadRequest(c, "Invalid availability ID", nil)
		return
	}

	if err := removeAvailability(uint(id)); err != nil {
		handleCoreError(c, err)
		return
	}

	utils.LogInfo("Availability %d deleted", id)
	utils.Success(c, "Availability deleted successfully", nil)
}

// FlushPastAvailability deletes every availability dated before today
func FlushPastAvailability(c *gin.Context) {
	utils.LogInfo("FlushPastAvailability called")

	flushed, err := flushPastAvailability(time.Now())
	if err != nil {
		handleCoreError(c, err)
		return
	}

	utils.LogInfo("Flushed %d past availability records", flushed)
	utils.Success(c, "Past availability flushed successfully", gin.H{
		"flushed": flushed,
	})
}
