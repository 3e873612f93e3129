package knowledge

import (
	"staffbot/internal/models"
)

// SeedDocuments returns the built-in knowledge set loaded at startup. The
// store always carries these, so the templated path can answer even when
// every external collaborator is down.
func SeedDocuments() []*models.KnowledgeDocument {
	return []*models.KnowledgeDocument{
		dalMakhaniRecipe(),
		kitchenHygieneSOP(),
		roleBasedTraining(),
	}
}

func dalMakhaniRecipe() *models.KnowledgeDocument {
	return &models.KnowledgeDocument{
		ID:       "dal-makhani",
		Title:    "Dal Makhani - Back to Source Signature",
		Category: models.CategoryRecipe,
		Tags:     []string{"signature", "vegetarian", "slow-cooked", "creamy", "popular"},
		IsActive: true,
		Version:  1,
		Content: map[models.Role]models.RoleContent{
			models.RoleChef: models.RecipeContent{
				Ingredients: []string{
					"काली दाल (Black Lentils) - 1 cup",
					"राजमा (Kidney Beans) - 1/4 cup",
					"मक्खन (Butter) - 4 tbsp",
					"क्रीम (Fresh Cream) - 1/2 cup",
					"अदरक-लहसुन paste - 2 tbsp",
					"प्याज (Onions) - 2 medium, finely chopped",
					"टमाटर (Tomatoes) - 3 medium, pureed",
					"गरम मसाला - 1 tsp",
					"जीरा (Cumin) - 1 tsp",
					"नमक (Salt) - to taste",
				},
				Method: []string{
					"8 hours soaking zaroori hai - overnight best",
					"Pressure cook with salt - 4-5 whistles",
					"Slow cook 4-6 hours on low flame - patience key hai",
					"Tempering: cumin, onions golden, ginger-garlic",
					"Add tomato puree, cook till oil separates",
					"Mix cooked dal, simmer 2 hours more",
					"Final touch: cream और butter - taste magic!",
				},
				ChefTips: []string{
					"Temperature control critical - low flame only",
					"Stir occasionally to prevent sticking",
					"Charcoal smoking for authentic flavor",
					"Fresh cream last 5 minutes mein add kariye",
					"Consistency should be creamy, not watery",
				},
				Coaching: models.Coaching{
					WrongWay:   "Fast cooking या microwave mein banana",
					RightWay:   "Traditional slow cooking with patience और proper tempering",
					Assignment: "Practice temperature control aur timing perfect kariye. Next batch mein charcoal smoking try kariye.",
					DailyTip:   "Authentic taste ke liye dhimi aanch pe sabr rakhiye! Great chefs know - time is the secret ingredient! 🔥",
				},
			},
			models.RoleWaiter: models.RecipeContent{
				Description:      "Our signature slow-cooked black lentils with butter and cream",
				CookingTime:      "6+ hours slow cooking process",
				ServingStyle:     "Hot, garnished with cream swirl and fresh coriander",
				PairingOptions:   []string{"Butter Naan", "Jeera Rice", "Tandoori Roti", "Garlic Naan"},
				Allergens:        []string{"Dairy (butter, cream)", "Gluten (if served with naan)"},
				GuestDescription: "This is our pride - 6+ hours of slow cooking makes it incredibly rich and creamy. The black lentils are soaked overnight and cooked with love, butter, and fresh cream.",
				Upselling: []string{
					"Perfect with our butter naan",
					"Try with jeera rice for complete meal",
					"Add paneer tikka as starter",
				},
				Coaching: models.Coaching{
					WrongWay:   "'It's just dal' kehna guests ko",
					RightWay:   "Passionate description with cooking process details",
					Assignment: "5 guests ko dal makhani ki complete story batayiye with cooking time emphasis",
					DailyTip:   "Food ki story batane se guests impressed hote hain! Cooking time mention karna adds value! ✨",
				},
			},
			models.RoleTrainee: models.RecipeContent{
				BasicInfo: "Dal Makhani is our signature dish - black lentils cooked very slowly",
				KeyPoints: []string{
					"Takes 6+ hours to cook properly",
					"Made with black lentils and kidney beans",
					"Very creamy and rich taste",
					"Served hot with bread or rice",
				},
				WhySpecial: "Long cooking time makes it very special and tasty",
				Coaching: models.Coaching{
					WrongWay:   "Complicated explanation देना guests ko",
					RightWay:   "Simple, confident description with key highlights",
					Assignment: "3 experienced staff se dal makhani के बारे में और details सीखिए",
					DailyTip:   "हर दिन कुछ नया सीखने की कोशिश करिए! Signature dishes के बारे में जानना important है! 📖",
				},
			},
		},
	}
}

func kitchenHygieneSOP() *models.KnowledgeDocument {
	return &models.KnowledgeDocument{
		ID:       "kitchen-hygiene",
		Title:    "Kitchen Hygiene Standards - Daily SOPs",
		Category: models.CategorySOP,
		Tags:     []string{"hygiene", "safety", "kitchen", "sop", "critical"},
		IsActive: true,
		Version:  1,
		Content: map[models.Role]models.RoleContent{
			models.RoleChef: models.SOPContent{
				Standards: []string{
					"Hand Protocol: 20 seconds soap wash before every task",
					"Uniform: Clean apron daily, hair net mandatory, closed shoes",
					"Food Safety: Raw-cooked separation, FIFO rotation strict",
					"Temperature Control: Cold storage 4°C, hot holding 65°C+",
					"Equipment: Daily sanitization of all tools and surfaces",
					"Team Monitoring: Ensure all kitchen staff follow protocols",
				},
				Responsibilities: []string{
					"Lead by example in hygiene practices",
					"Train junior chefs on proper procedures",
					"Monitor team compliance throughout shift",
					"Report any hygiene violations immediately",
					"Maintain hygiene checklist and documentation",
				},
				Coaching: models.Coaching{
					WrongWay:   "Dirty hands se food handle karna या team ki hygiene ignore karna",
					RightWay:   "Every step mein cleanliness maintain karna और team ko guide karna",
					Assignment: "Team ko hygiene training diye aur daily checklist implement kariye",
					DailyTip:   "Kitchen ki cleanliness restaurant ki reputation hai! Lead by example! 🏆",
				},
			},
			models.RoleWaiter: models.SOPContent{
				Standards: []string{
					"Personal Hygiene: Clean uniform, trimmed nails, fresh breath",
					"Hand Sanitization: Before serving, between tables, after cleaning",
					"Table Service: Clean serving tools, proper plate handling",
					"Dining Area: Clean tables, chairs, floor maintenance",
					"Guest Safety: Hand sanitizer available, maintain cleanliness",
				},
				Protocol: []string{
					"Never touch food directly with hands",
					"Use serving spoons and tongs properly",
					"Clean and sanitize tables between guests",
					"Maintain personal grooming standards",
					"Report any cleanliness issues immediately",
				},
				Coaching: models.Coaching{
					WrongWay:   "Dirty uniform mein guests ko serve karna या careless table cleaning",
					RightWay:   "Impeccable presentation aur thorough cleaning between services",
					Assignment: "Today 10 tables ko perfect hygiene standards se serve kariye",
					DailyTip:   "Aapki cleanliness restaurant ka first impression hai! Guests notice everything! 👔",
				},
			},
			models.RoleDeliveryBoy: models.SOPContent{
				Standards: []string{
					"Personal Hygiene: Clean uniform, helmet, sanitized hands",
					"Vehicle Cleanliness: Clean delivery box, sanitized surfaces daily",
					"Food Safety: Insulated bags, temperature maintenance check",
					"Customer Interaction: Maintain distance, use hand sanitizer",
					"Packaging: Check sealed containers, no spillage, clean presentation",
				},
				Protocol: []string{
					"Sanitize hands before handling food packages",
					"Check delivery bag cleanliness before each shift",
					"Maintain cold chain for temperature-sensitive items",
					"Use contactless delivery when possible",
					"Report any packaging or hygiene issues",
				},
				Coaching: models.Coaching{
					WrongWay:   "Dirty delivery bag ya careless food handling",
					RightWay:   "Food safety priority aur professional appearance maintain karna",
					Assignment: "Today 10 deliveries mein perfect hygiene protocol follow kariye",
					DailyTip:   "Aap restaurant ka mobile ambassador hain! Cleanliness reflects our brand! 🏍️",
				},
			},
			models.RoleSupervisor: models.SOPContent{
				Responsibilities: []string{
					"Team Monitoring: Daily hygiene checks, uniform inspection",
					"Training Oversight: Regular hygiene training sessions conduct",
					"Compliance: Health department standards, audit preparation",
					"Documentation: Hygiene checklists, incident reports maintain",
					"Corrective Action: Immediate fixes, staff counseling when needed",
				},
				Protocol: []string{
					"Personal hygiene of all staff members",
					"Cleanliness of work areas and equipment",
					"Proper food storage and temperature control",
					"Waste management and disposal procedures",
					"Hand washing stations and sanitizer availability",
				},
				Coaching: models.Coaching{
					WrongWay:   "Team ki hygiene ignore karna या documentation skip karna",
					RightWay:   "Proactive monitoring aur continuous improvement focus",
					Assignment: "Team ke liye weekly hygiene audit conduct kariye aur improvement plan banayiye",
					DailyTip:   "Team ki hygiene aapki responsibility hai! Regular monitoring prevents problems! 📋",
				},
			},
			models.RoleTrainee: models.SOPContent{
				Standards: []string{
					"Personal Hygiene: Daily bath, clean clothes, trimmed nails mandatory",
					"Hand Washing: 20 seconds with soap, before every task without fail",
					"Food Safety: Never touch food directly, always use gloves/tools",
					"Workspace: Keep your area clean and organized always",
					"Questions: When in doubt about hygiene, ask supervisor immediately",
				},
				Protocol: []string{
					"Week 1: Personal hygiene and hand washing techniques",
					"Week 2: Food safety basics and cross-contamination prevention",
					"Week 3: Equipment cleaning and sanitization procedures",
					"Week 4: Advanced hygiene practices and quality standards",
				},
				Coaching: models.Coaching{
					WrongWay:   "Hygiene rules ko ignore karna या 'chalta hai' attitude",
					RightWay:   "Every rule ko seriously follow karna aur questions puchna",
					Assignment: "Hygiene checklist banayiye aur daily follow kariye. Mentor se feedback liye",
					DailyTip:   "Good habits शुरू से ही बनाइए! Hygiene mein compromise never! ✨",
				},
			},
		},
	}
}

func roleBasedTraining() *models.KnowledgeDocument {
	return &models.KnowledgeDocument{
		ID:       "role-based-training",
		Title:    "Comprehensive Role-Based Training Program",
		Category: models.CategoryTraining,
		Tags:     []string{"training", "development", "skills"},
		IsActive: true,
		Version:  1,
		Content: map[models.Role]models.RoleContent{
			models.RoleChef: models.TrainingContent{
				Modules: []string{
					"Advanced Cooking Techniques",
					"Kitchen Management & Leadership",
					"Food Safety & HACCP Principles",
					"Recipe Development & Standardization",
					"Team Training & Mentoring",
					"Inventory Management",
					"Cost Control & Portion Management",
				},
				Skills: []string{
					"Master slow cooking techniques for signature dishes",
					"Temperature control and timing precision",
					"Spice balancing and flavor development",
					"Kitchen workflow optimization",
					"Junior chef mentoring and development",
					"Quality control and consistency maintenance",
				},
				Coaching: models.Coaching{
					WrongWay:   "Bina proper training ke team ko guide karna या shortcuts lena",
					RightWay:   "Systematic training approach aur continuous skill development",
					Assignment: "1 junior chef ko mentor kariye this week. Daily feedback sessions conduct kariye.",
					DailyTip:   "Great chefs create more great chefs! Knowledge sharing se team strong banti hai! 🌟",
				},
			},
			models.RoleWaiter: models.TrainingContent{
				Modules: []string{
					"Customer Service Excellence",
					"Menu Knowledge & Upselling",
					"Order Management & POS Systems",
					"Complaint Handling & Resolution",
					"Table Management & Timing",
					"Wine & Beverage Service",
					"Cultural Sensitivity & Communication",
				},
				Skills: []string{
					"Warm greeting and first impression management",
					"Complete menu knowledge including ingredients",
					"Effective upselling without being pushy",
					"Multi-table management and timing",
					"Complaint resolution with empathy",
					"Professional service etiquette",
				},
				Coaching: models.Coaching{
					WrongWay:   "Guests ko ignore karna, rude behavior, या menu knowledge lack",
					RightWay:   "Proactive service, warm hospitality, aur complete product knowledge",
					Assignment: "3 new menu items ke complete details learn kariye. 5 customers ko upselling try kariye.",
					DailyTip:   "Smile aapka best accessory hai! Genuine care se customers loyal bante hain! 😊",
				},
			},
			models.RoleDeliveryBoy: models.TrainingContent{
				Modules: []string{
					"Road Safety & Defensive Driving",
					"Customer Communication & Service",
					"Food Handling & Temperature Control",
					"Route Optimization & Time Management",
					"Problem Solving & Emergency Procedures",
					"Technology Usage (GPS, Apps)",
					"Professional Representation",
				},
				Skills: []string{
					"Safe and efficient driving in all conditions",
					"Polite and professional customer interaction",
					"Proper food handling and temperature maintenance",
					"Route planning and traffic management",
					"Problem resolution (wrong address, payment issues)",
					"Technology utilization for efficiency",
				},
				Coaching: models.Coaching{
					WrongWay:   "Rash driving, customer se rude behavior, या safety ignore karna",
					RightWay:   "Safety priority, professional service, aur time management",
					Assignment: "5 customers ko exceptional delivery experience diye. Safety checklist daily follow kariye.",
					DailyTip:   "Safe delivery is successful delivery! Aapki safety sabse important hai! 🛡️",
				},
			},
			models.RoleSupervisor: models.TrainingContent{
				Modules: []string{
					"Leadership & Team Management",
					"Performance Management & Coaching",
					"Quality Control & Standards",
					"Conflict Resolution & Communication",
					"Operational Excellence & Process Improvement",
					"Training & Development Planning",
					"Data Analysis & Reporting",
				},
				Skills: []string{
					"Lead by example in all situations",
					"Motivate team through positive reinforcement",
					"Provide constructive feedback regularly",
					"Identify and develop team potential",
					"Create inclusive and supportive environment",
				},
				Coaching: models.Coaching{
					WrongWay:   "Micromanagement, negative criticism, या team development ignore karna",
					RightWay:   "Supportive leadership, positive coaching, aur continuous development focus",
					Assignment: "3 team members ko personalized feedback diye. Weekly performance review conduct kariye.",
					DailyTip:   "Great supervisors create great teams! Positive leadership se sab kuch possible hai! 🌟",
				},
			},
			models.RoleTrainee: models.TrainingContent{
				LearningPath: []string{
					"Week 1-2: Company culture, values, basic safety",
					"Week 3-4: Role-specific skills and procedures",
					"Week 5-6: Advanced techniques and customer interaction",
					"Week 7-8: Independence and quality standards",
					"Ongoing: Continuous learning and skill development",
				},
				Fundamentals: []string{
					"Back to Source values and culture",
					"Basic hygiene and safety protocols",
					"Customer service fundamentals",
					"Communication skills development",
					"Time management and punctuality",
				},
				Coaching: models.Coaching{
					WrongWay:   "Jaldi mein sab kuch seekhne ki koshish या questions puchne se hesitation",
					RightWay:   "Step by step learning, mentor guidance, aur patience se skill building",
					Assignment: "Apne mentor se daily 1 new skill seekhiye. Progress journal maintain kariye.",
					DailyTip:   "Patience aur practice se perfection aati hai! Questions puchna strength hai! 🚀",
				},
			},
		},
	}
}
