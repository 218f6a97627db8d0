package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coursemash/coursemash/internal/config"
	"github.com/coursemash/coursemash/internal/store"
	"github.com/coursemash/coursemash/internal/timetable"
	"github.com/coursemash/coursemash/pkg/model"
)

type server struct {
	cfg      *config.Config
	slots    *timetable.SlotCatalog
	catalog  []model.Course
	byCode   map[string]model.Course
	store    *store.Store
	log      *zap.Logger
	validate *validator.Validate
}

func newServer(cfg *config.Config, catalog []model.Course, st *store.Store, log *zap.Logger) *server {
	byCode := make(map[string]model.Course, len(catalog))
	for _, c := range catalog {
		byCode[model.NormalizeCode(c.Code)] = c
	}
	return &server{
		cfg:      cfg,
		slots:    timetable.NewSlotCatalog(cfg.Timetable),
		catalog:  catalog,
		byCode:   byCode,
		store:    st,
		log:      log,
		validate: validator.New(),
	}
}

func (s *server) handleGetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"courses": s.catalog})
}

func (s *server) handleGetCourse(ctx *gin.Context) {
	course, ok := s.byCode[model.NormalizeCode(ctx.Param("code"))]
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	ctx.JSON(http.StatusOK, course)
}

func (s *server) handleCreateSchedule(ctx *gin.Context) {
	id := s.store.Create()
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *server) handleGetSchedule(ctx *gin.Context) {
	courses, err := s.store.Courses(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": courses})
}

// customCoursePayload mirrors the custom-course form: user-authored entries
// not present in the catalog, optionally without any fixed slot.
type customCoursePayload struct {
	Code          string `json:"code" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Credits       string `json:"credits"`
	Instructor    string `json:"instructor"`
	HasNoSlot     bool   `json:"hasNoSlot"`
	LectureSlots  string `json:"lectureSlots"`
	LabSlots      string `json:"labSlots"`
	TutorialSlots string `json:"tutorialSlots"`
	Location      string `json:"location"`
}

type addCourseRequest struct {
	Code   string               `json:"code"`
	Custom *customCoursePayload `json:"custom"`
}

func (s *server) handleAddCourse(ctx *gin.Context) {
	id := ctx.Param("id")

	var req addCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var course model.Course
	switch {
	case req.Custom != nil:
		if err := s.validate.Struct(req.Custom); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		course = customToCourse(req.Custom)
	case req.Code != "":
		// Code-only references resolve against the catalog here, at the
		// boundary; the core only ever sees full course records.
		var ok bool
		course, ok = s.byCode[model.NormalizeCode(req.Code)]
		if !ok {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "course not found in catalog"})
			return
		}
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "provide a catalog code or a custom course"})
		return
	}

	if err := s.store.Add(id, course); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, store.ErrDuplicate) {
			status = http.StatusConflict
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

func customToCourse(p *customCoursePayload) model.Course {
	lecture, lab, tutorial := p.LectureSlots, p.LabSlots, p.TutorialSlots
	if p.HasNoSlot {
		lecture, lab, tutorial = "", "", ""
	}
	var instructors []string
	if p.Instructor != "" {
		instructors = []string{p.Instructor}
	}
	return model.Course{
		ID:          "custom-" + uuid.NewString(),
		Code:        p.Code,
		Name:        p.Name,
		Credits:     model.Credits(p.Credits),
		Instructors: instructors,
		IsCustom:    true,
		HasNoSlot:   p.HasNoSlot,
		Schedule: map[model.SessionType]model.SessionInfo{
			model.SessionLecture:  {lecture, p.Location},
			model.SessionLab:      {lab, p.Location},
			model.SessionTutorial: {tutorial, p.Location},
		},
	}
}

func (s *server) handleRemoveCourse(ctx *gin.Context) {
	err := s.store.Remove(ctx.Param("id"), ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (s *server) handleGetGrid(ctx *gin.Context) {
	courses, err := s.store.Courses(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	grid := timetable.BuildGrid(courses, s.slots)
	ctx.JSON(http.StatusOK, gin.H{
		"grid":     grid,
		"flexible": timetable.FlexibleCourses(courses),
	})
}

func (s *server) handleGetConflicts(ctx *gin.Context) {
	courses, err := s.store.Courses(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	grid := timetable.BuildGrid(courses, s.slots)
	conflicts := timetable.Conflicts(grid, s.slots)
	ctx.JSON(http.StatusOK, gin.H{"conflicts": conflicts, "count": len(conflicts)})
}

func (s *server) handleGetStats(ctx *gin.Context) {
	courses, err := s.store.Courses(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	stats := timetable.ComputeStats(courses, s.cfg.Workload.SessionHours, timetable.Thresholds{
		LightBelow:   s.cfg.Workload.LightBelow,
		BalancedUpTo: s.cfg.Workload.BalancedUpTo,
	})
	ctx.JSON(http.StatusOK, stats)
}

func (s *server) handleGetCalendar(ctx *gin.Context) {
	courses, err := s.store.Courses(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	grid := timetable.BuildGrid(courses, s.slots)
	ics := timetable.ExportICS(grid, exportOptions(s.cfg.Calendar))

	ctx.Header("Content-Disposition", `attachment; filename="`+s.cfg.Calendar.Filename+`"`)
	ctx.Data(http.StatusOK, "text/calendar;charset=utf-8", []byte(ics))
}

func exportOptions(cc config.CalendarConfig) timetable.ExportOptions {
	policy := timetable.PolicyExportAll
	if cc.Policy == "first" {
		policy = timetable.PolicyFirstWins
	}
	return timetable.ExportOptions{
		Timezone:  cc.Timezone,
		WeekStart: cc.WeekStart,
		Until:     cc.Until,
		ProdID:    cc.ProdID,
		Policy:    policy,
	}
}
