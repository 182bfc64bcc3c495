package resources

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/dinogpt/internal/bot"
	"github.com/keshon/dinogpt/internal/command"
	"github.com/keshon/dinogpt/internal/middleware"
)

const selectCustomID = "resources:select"

type resource struct {
	Title    string
	Desc     string
	Location string
	Hours    string
	Link     string
}

var catalog = map[string]resource{
	"math": {
		Title:    "🧮 Math Clinic",
		Desc:     "Support for undergraduate math courses.",
		Location: "Pickard Hall 325",
		Hours:    "Mon-Thu: 9am-8pm\nFri: 9am-12pm\nSun: 1pm-5pm",
		Link:     "https://www.uta.edu/academics/schools-colleges/science/departments/mathematics/lrc/uta-math-clinic",
	},
	"bughouse": {
		Title:    "🐞 The bugHouse (CSE)",
		Desc:     "Tutoring and review sessions for computer science.",
		Location: "ERB 570",
		Hours:    "Mon-Fri: 10am-6pm",
		Link:     "https://www.uta.edu/academics/schools-colleges/engineering/academics/departments/cse/students/bughouse",
	},
	"writing": {
		Title:    "📖 Writing Center",
		Desc:     "Help with writing across all subjects.",
		Location: "Central Library 411",
		Hours:    "See website for details",
		Link:     "https://www.uta.edu/owl/#",
	},
	"success": {
		Title:    "📚 Academic Success Center",
		Desc:     "Tutoring, PLTL, TRIO, IDEAS Center, and more.",
		Location: "Ransom Hall 206",
		Hours:    "Check website for hours",
		Link:     "https://www.uta.edu/student-success/course-assistance",
	},
	"advising": {
		Title:    "👥 University Advising Center",
		Desc:     "Advising for first-year and undeclared students.",
		Location: "Ransom Hall, 1st Floor",
		Hours:    "Mon-Fri: 8am-5pm",
		Link:     "https://www.uta.edu/student-success/advising/university-advising-center",
	},
	"testing": {
		Title:    "🧪 Academic Testing Services",
		Desc:     "Test proctoring and exam services.",
		Location: "University Hall 004",
		Hours:    "Mon-Fri: 8am-5pm\nSat: 8am-4pm",
		Link:     "https://www.uta.edu/student-success/directory-academic-testing-services",
	},
	"access": {
		Title:    "🧑‍🦽 Accessibility & Resource Center",
		Desc:     "Accommodations and support for students with disabilities.",
		Location: "University Hall 102",
		Hours:    "Mon-Fri: 8am-5pm",
		Link:     "https://www.uta.edu/student-affairs/sarcenter",
	},
}

func selectMenu() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    selectCustomID,
				Placeholder: "Choose a resource to learn more...",
				Options: []discordgo.SelectMenuOption{
					{Label: "Math Clinic", Value: "math"},
					{Label: "The BugHouse (CSE)", Value: "bughouse"},
					{Label: "Writing Center", Value: "writing"},
					{Label: "Academic Success Center", Value: "success"},
					{Label: "Advising Center", Value: "advising"},
					{Label: "Testing Services", Value: "testing"},
					{Label: "Accessibility Center", Value: "access"},
				},
			},
		}},
	}
}

type ResourcesCommand struct{}

func (c *ResourcesCommand) Name() string        { return "resources" }
func (c *ResourcesCommand) Description() string { return "Get help through UTA's academic resources" }
func (c *ResourcesCommand) Category() string    { return "🎓 Campus" }

func (c *ResourcesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ResourcesCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return nil
	}

	return slash.Session.InteractionRespond(slash.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    "Choose a resource below:",
			Components: selectMenu(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// Component swaps the picked resource into the ephemeral message while
// keeping the menu around for further browsing.
func (c *ResourcesCommand) Component(ctx *command.ComponentContext) error {
	data := ctx.Event.MessageComponentData()
	if data.CustomID != selectCustomID || len(data.Values) == 0 {
		return nil
	}

	res, ok := catalog[data.Values[0]]
	if !ok {
		return fmt.Errorf("unknown resource %q", data.Values[0])
	}

	embed := &discordgo.MessageEmbed{
		Title:       res.Title,
		Description: res.Desc,
		Color:       0x1E90FF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📍 Location", Value: res.Location, Inline: true},
			{Name: "🕒 Hours", Value: res.Hours, Inline: true},
			{Name: "🔗 Website", Value: fmt.Sprintf("[Visit Site](%s)", res.Link), Inline: false},
		},
	}

	return bot.UpdateMessage(ctx.Session, ctx.Event, &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: selectMenu(),
	})
}

func init() {
	command.Register(middleware.Apply(
		&ResourcesCommand{},
		middleware.WithGuildOnly,
		middleware.WithCommandLogger,
	))
}
