package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/repositories"
	"github.com/nadira/campusconduct/internal/app/services"
	"github.com/nadira/campusconduct/internal/bootstrap"
	"github.com/nadira/campusconduct/internal/config"
	"github.com/nadira/campusconduct/internal/pkg/logger"
	"github.com/nadira/campusconduct/internal/seed"
)

// conductctl is the operator console for the conduct service. It talks to the
// same database through the same service layer as the API, so every rule the
// API enforces (admin gating, duplicate checks, rating bounds) applies here too.

func init() {
	// Optional .env for local operation; real deployments use the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not load .env file")
	}
}

type console struct {
	authService    services.AuthService
	staffService   services.StaffService
	studentService services.StudentService
	reviewService  services.ReviewService
	staffRepo      repositories.IStaffRepository
	seeder         *seed.Seeder
	cfg            *config.Config
	reader         *bufio.Scanner
}

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}

	c := &console{
		authService:    deps.AuthService,
		staffService:   deps.StaffService,
		studentService: deps.StudentService,
		reviewService:  deps.ReviewService,
		staffRepo:      deps.Repos.StaffRepository,
		seeder:         deps.Seeder,
		cfg:            cfg,
		reader:         bufio.NewScanner(os.Stdin),
	}

	ctx := context.Background()
	for {
		displayMenu()
		switch c.readLine("") {
		case "1":
			c.login(ctx)
		case "2":
			c.createStaff(ctx)
		case "3":
			c.addStudent(ctx)
		case "4":
			c.findStudent(ctx)
		case "5":
			c.addReview(ctx)
		case "6":
			c.listStudentReviews(ctx)
		case "7":
			c.listStaffReviews(ctx)
		case "8":
			c.renameStaff(ctx)
		case "9":
			c.runSeed(ctx)
		case "10":
			color.Green("Goodbye.")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func displayMenu() {
	color.Cyan("\n=== Campus Conduct Console ===")
	fmt.Println("1. Login (print access token)")
	fmt.Println("2. Create Staff Account")
	fmt.Println("3. Add Student")
	fmt.Println("4. Find Student")
	fmt.Println("5. Add Review")
	fmt.Println("6. List Reviews for Student")
	fmt.Println("7. List Reviews by Staff")
	fmt.Println("8. Rename Staff Member")
	fmt.Println("9. Seed Default Data")
	fmt.Println("10. Exit")
	fmt.Print("\nEnter your choice (1-10): ")
}

func (c *console) readLine(prompt string) string {
	if prompt != "" {
		fmt.Print(prompt)
	}
	if c.reader.Scan() {
		return strings.TrimSpace(c.reader.Text())
	}
	return ""
}

func (c *console) login(ctx context.Context) {
	req := &dto.LoginRequest{
		Email:    c.readLine("Email: "),
		Password: c.readLine("Password: "),
	}

	token, err := c.authService.Login(ctx, req)
	if err != nil {
		color.Red("Login failed: %v", err)
		return
	}
	color.Green("Logged in. Token valid for %d seconds.", token.ExpiresIn)
	fmt.Println(token.AccessToken)
}

func (c *console) createStaff(ctx context.Context) {
	req := &dto.CreateStaffRequest{
		Prefix:    c.readLine("Prefix (e.g. Mr., Dr.): "),
		FirstName: c.readLine("First name: "),
		LastName:  c.readLine("Last name: "),
		Email:     c.readLine("Email: "),
		Password:  c.readLine("Password: "),
	}
	req.IsAdmin = strings.EqualFold(c.readLine("Admin account? (y/N): "), "y")

	// An empty creator email takes the bootstrap path; otherwise the named
	// staff member must exist and be an admin.
	var createdByID *int64
	if creatorEmail := c.readLine("Creator email (blank for bootstrap): "); creatorEmail != "" {
		creator, err := c.staffRepo.GetByEmail(ctx, creatorEmail)
		if err != nil {
			color.Red("Could not resolve creator: %v", err)
			return
		}
		createdByID = &creator.ID
	}

	staff, err := c.staffService.CreateStaff(ctx, req, createdByID)
	if err != nil {
		color.Red("Failed to create staff account: %v", err)
		return
	}
	color.Green("Created %s (id %d, admin=%t)", staff.DisplayName(), staff.ID, staff.IsAdmin)
}

func (c *console) addStudent(ctx context.Context) {
	req := &dto.AddStudentRequest{
		StudentID: c.readLine("Student ID (9 digits): "),
		FirstName: c.readLine("First name: "),
		LastName:  c.readLine("Last name: "),
		Email:     c.readLine("Email: "),
	}

	student, err := c.studentService.AddStudent(ctx, req)
	if err != nil {
		color.Red("Failed to add student: %v", err)
		return
	}
	color.Green("Added student %s %s (%s)", student.FirstName, student.LastName, student.StudentID)
}

func (c *console) findStudent(ctx context.Context) {
	studentID := c.readLine("Student ID: ")
	student, err := c.studentService.GetStudent(ctx, studentID)
	if err != nil {
		color.Red("Student not found: %v", err)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Student ID", "First Name", "Last Name", "Email"})
	table.Append([]string{student.StudentID, student.FirstName, student.LastName, student.Email})
	table.Render()
}

func (c *console) addReview(ctx context.Context) {
	studentID := c.readLine("Student ID: ")
	reviewerEmail := c.readLine("Reviewer email: ")
	text := c.readLine("Review text: ")
	rating, err := strconv.Atoi(c.readLine("Rating (1-5): "))
	if err != nil {
		color.Red("Rating must be a number between 1 and 5")
		return
	}

	reviewer, err := c.staffRepo.GetByEmail(ctx, reviewerEmail)
	if err != nil {
		color.Red("Could not resolve reviewer: %v", err)
		return
	}

	if _, err := c.reviewService.AddReview(ctx, studentID, text, rating, reviewer.ID); err != nil {
		color.Red("Failed to add review: %v", err)
		return
	}
	color.Green("Review recorded for student %s", studentID)
}

func (c *console) listStudentReviews(ctx context.Context) {
	studentID := c.readLine("Student ID: ")
	views, err := c.reviewService.ReviewsForStudent(ctx, studentID)
	if err != nil {
		color.Red("Failed to list reviews: %v", err)
		return
	}
	renderReviews(views)
}

func (c *console) listStaffReviews(ctx context.Context) {
	staffID, err := strconv.ParseInt(c.readLine("Staff ID: "), 10, 64)
	if err != nil {
		color.Red("Staff ID must be a number")
		return
	}
	views, err := c.reviewService.ReviewsForStaff(ctx, staffID)
	if err != nil {
		color.Red("Failed to list reviews: %v", err)
		return
	}
	renderReviews(views)
}

func renderReviews(views []dto.ReviewView) {
	if len(views) == 0 {
		color.Yellow("No reviews found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Student ID", "Rating", "Reviewer", "Text"})
	for _, v := range views {
		table.Append([]string{v.StudentID, strconv.Itoa(v.Rating), v.Reviewer, v.Text})
	}
	table.Render()
}

func (c *console) renameStaff(ctx context.Context) {
	staffID, err := strconv.ParseInt(c.readLine("Staff ID: "), 10, 64)
	if err != nil {
		color.Red("Staff ID must be a number")
		return
	}
	firstName := c.readLine("New first name: ")

	staff, err := c.staffService.RenameStaff(ctx, staffID, firstName)
	if err != nil {
		color.Red("Failed to rename staff member: %v", err)
		return
	}
	color.Green("Staff member %d is now %s", staff.ID, staff.DisplayName())
}

func (c *console) runSeed(ctx context.Context) {
	if err := c.seeder.Run(ctx, c.cfg.Seed.StudentsFile, c.cfg.Seed.ReviewsFile); err != nil {
		color.Red("Seeding failed: %v", err)
		return
	}
	color.Green("Seed data loaded.")
}
