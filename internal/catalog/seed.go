package catalog

import "campusmap/internal/models"

// MapCenter and MapZoom frame the seeded campus.
var MapCenter = models.Coordinates{Lat: 52.2851, Lon: 104.2813}

const MapZoom = 14

// Seed returns the Irkutsk State University buildings the server starts
// with when no database is configured.
func Seed() []models.Campus {
	return []models.Campus{
		{
			ID: "1", Name: "ISU Main Building", Address: "1 Karl Marx St, Irkutsk",
			Lat: 52.2851, Lon: 104.2813, Category: "administration",
			Description: "Main administrative building of Irkutsk State University",
			YearBuilt:   1931, Floors: 4, StudentsCapacity: models.IntPtr(500),
			Phone: "+7 (3952) 24-34-53", Website: "https://isu.ru",
			Faculties: []string{"Rector's office", "Admissions office"},
		},
		{
			ID: "2", Name: "Faculty of History", Address: "2 Chkalov St, Irkutsk",
			Lat: 52.2842, Lon: 104.2855, Category: "education",
			Description: "ISU Faculty of History building",
			YearBuilt:   1940, Floors: 3, StudentsCapacity: models.IntPtr(800),
			Phone: "+7 (3952) 24-37-25", Website: "https://hist.isu.ru",
			Faculties: []string{"Faculty of History", "Faculty of Psychology"},
		},
		{
			ID: "3", Name: "Faculty of Biology and Soil Science", Address: "5 Sukhe-Bator St, Irkutsk",
			Lat: 52.2867, Lon: 104.2826, Category: "education",
			Description: "ISU Faculty of Biology and Soil Science building",
			YearBuilt:   1960, Floors: 4, StudentsCapacity: models.IntPtr(600),
			Phone: "+7 (3952) 24-18-55", Website: "https://bio.isu.ru",
			Faculties: []string{"Faculty of Biology and Soil Science"},
		},
		{
			ID: "4", Name: "Faculty of Physics", Address: "20 Gagarin Blvd, Irkutsk",
			Lat: 52.2731, Lon: 104.2767, Category: "education",
			Description: "ISU Faculty of Physics building",
			YearBuilt:   1965, Floors: 5, StudentsCapacity: models.IntPtr(750),
			Phone: "+7 (3952) 52-12-70", Website: "https://physdep.isu.ru",
			Faculties: []string{"Faculty of Physics"},
		},
		{
			ID: "5", Name: "Faculty of Chemistry", Address: "126 Lermontov St, Irkutsk",
			Lat: 52.2501, Lon: 104.2591, Category: "education",
			Description: "ISU Faculty of Chemistry building",
			YearBuilt:   1975, Floors: 6, StudentsCapacity: models.IntPtr(700),
			Phone: "+7 (3952) 42-59-51", Website: "https://chem.isu.ru",
			Faculties: []string{"Faculty of Chemistry"},
		},
		{
			ID: "6", Name: "Faculty of Psychology", Address: "2 Chkalov St, Irkutsk",
			Lat: 52.2845, Lon: 104.2858, Category: "education",
			Description: "ISU Faculty of Psychology building",
			YearBuilt:   1940, Floors: 3, StudentsCapacity: models.IntPtr(400),
			Phone: "+7 (3952) 24-39-95", Website: "https://psycho.isu.ru",
			Faculties: []string{"Faculty of Psychology"},
		},
		{
			ID: "7", Name: "Law Institute", Address: "10 Ulan-Batorskaya St, Irkutsk",
			Lat: 52.2611, Lon: 104.3020, Category: "education",
			Description: "ISU Law Institute",
			YearBuilt:   1998, Floors: 5, StudentsCapacity: models.IntPtr(1200),
			Phone: "+7 (3952) 52-11-91", Website: "https://lawinst.isu.ru",
			Faculties: []string{"Law Institute"},
		},
		{
			ID: "8", Name: "International Institute of Economics and Linguistics", Address: "8 Lenin St, Irkutsk",
			Lat: 52.2889, Lon: 104.2836, Category: "education",
			Description: "ISU International Institute of Economics and Linguistics",
			YearBuilt:   1988, Floors: 4, StudentsCapacity: models.IntPtr(900),
			Phone: "+7 (3952) 24-68-39", Website: "https://miel.isu.ru",
			Faculties: []string{"Institute of Economics and Linguistics"},
		},
		{
			ID: "9", Name: "Institute of Mathematics and Information Technologies", Address: "20 Gagarin Blvd, Irkutsk",
			Lat: 52.2735, Lon: 104.2773, Category: "education",
			Description: "ISU Institute of Mathematics and Information Technologies",
			YearBuilt:   1965, Floors: 5, StudentsCapacity: models.IntPtr(1000),
			Phone: "+7 (3952) 52-12-77", Website: "https://math.isu.ru",
			Faculties: []string{"Institute of Mathematics and Information Technologies"},
		},
		{
			ID: "10", Name: "Pedagogical Institute", Address: "6 Nizhnyaya Naberezhnaya St, Irkutsk",
			Lat: 52.2905, Lon: 104.2796, Category: "education",
			Description: "ISU Pedagogical Institute",
			YearBuilt:   1955, Floors: 4, StudentsCapacity: models.IntPtr(1500),
			Phone: "+7 (3952) 20-07-20", Website: "https://pi.isu.ru",
			Faculties: []string{"Pedagogical Institute"},
		},
		{
			ID: "11", Name: "Dormitory No. 1", Address: "2 Ulan-Batorskaya St, Irkutsk",
			Lat: 52.2606, Lon: 104.3005, Category: "dormitory",
			Description: "ISU Dormitory No. 1",
			YearBuilt:   1980, Floors: 9, StudentsCapacity: models.IntPtr(450),
			Phone: "+7 (3952) 52-15-44", Website: "https://isu.ru/hostel",
			Facilities: []string{"Laundry", "Gym", "Reading room"},
		},
		{
			ID: "12", Name: "Dormitory No. 2", Address: "4 Ulan-Batorskaya St, Irkutsk",
			Lat: 52.2608, Lon: 104.3010, Category: "dormitory",
			Description: "ISU Dormitory No. 2",
			YearBuilt:   1982, Floors: 9, StudentsCapacity: models.IntPtr(500),
			Phone: "+7 (3952) 52-15-46", Website: "https://isu.ru/hostel",
			Facilities: []string{"Laundry", "Cafe", "Reading room"},
		},
		{
			ID: "13", Name: "Scientific Library", Address: "24 Gagarin Blvd, Irkutsk",
			Lat: 52.2722, Lon: 104.2761, Category: "library",
			Description: "ISU Scientific Library",
			YearBuilt:   1970, Floors: 3, Capacity: models.IntPtr(300), BookCount: models.IntPtr(1500000),
			Phone: "+7 (3952) 24-29-74", Website: "https://library.isu.ru",
			Services: []string{"Lending", "Reading room", "Electronic resources"},
		},
		{
			ID: "14", Name: "Sports Complex", Address: "3 Lenin St, Irkutsk",
			Lat: 52.2893, Lon: 104.2823, Category: "sport",
			Description: "ISU Sports Complex",
			YearBuilt:   1972, Floors: 2, Capacity: models.IntPtr(500),
			Phone: "+7 (3952) 24-63-62", Website: "https://sport.isu.ru",
			Facilities: []string{"Main hall", "Fitness room", "Swimming pool", "Shooting range"},
		},
		{
			ID: "15", Name: "Dormitory No. 3", Address: "6 Ulan-Batorskaya St, Irkutsk",
			Lat: 52.2610, Lon: 104.3015, Category: "dormitory",
			Description: "ISU Dormitory No. 3",
			YearBuilt:   1985, Floors: 9, StudentsCapacity: models.IntPtr(480),
			Phone: "+7 (3952) 52-15-48", Website: "https://isu.ru/hostel",
			Facilities: []string{"Laundry", "Lounge", "Study room"},
		},
		{
			ID: "16", Name: "Culture and Leisure Center", Address: "3 Karl Marx St, Irkutsk",
			Lat: 52.2855, Lon: 104.2820, Category: "culture",
			Description: "ISU Culture and Leisure Center",
			YearBuilt:   1995, Floors: 2, Capacity: models.IntPtr(300),
			Phone: "+7 (3952) 24-35-90", Website: "https://culture.isu.ru",
			Facilities: []string{"Assembly hall", "Dance studios", "Museum"},
		},
		{
			ID: "17", Name: "ISU Canteen", Address: "2 Karl Marx St, Irkutsk",
			Lat: 52.2853, Lon: 104.2817, Category: "food",
			Description: "Main ISU canteen",
			YearBuilt:   1960, Floors: 1, Capacity: models.IntPtr(200),
			Phone: "+7 (3952) 24-36-50", Website: "https://isu.ru/dining",
			MealTimes: models.Meals("Breakfast", "8:00-10:00", "Lunch", "12:00-15:00", "Dinner", "17:00-19:00"),
		},
		{
			ID: "18", Name: "Medical Center", Address: "1 Karl Marx St, Irkutsk",
			Lat: 52.2850, Lon: 104.2814, Category: "medicine",
			Description: "ISU medical center",
			YearBuilt:   1970, Floors: 1, Capacity: models.IntPtr(50),
			Phone: "+7 (3952) 24-34-70", Website: "https://health.isu.ru",
			Services: []string{"First aid", "Health checkups", "Vaccination"},
		},
	}
}
