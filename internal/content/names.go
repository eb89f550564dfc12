package content

// Built-in name lists. The standard real lists are a fallback until a
// source replaces them; the themed lists are fixed.

var standardFakeArtists = []string{
	"EchoWave", "CrimsonFalls", "Starfire", "VelvetReign", "LunarVeil",
	"GhostLight", "Azure", "MysticEcho", "SolarWind", "NightVibe",
	"Zenith", "BlazeTrail", "PulseField", "LucidDream", "MidnightArc",
	"PhantomBeat", "GoldenEcho", "NeonBloom", "Prism", "SilentHorizon",
	"Wander", "SoundWave", "EchoValley", "SonicRush", "SilverMist",
	"OpalSky", "Spectral", "UrbanChill", "DesertPulse", "ShadowGlow",
	"Twilight", "MoonSage", "InfiniteRhythm", "Nocturne", "VioletFlare",
	"Obsidian", "EchoChase", "NeonOasis", "SunlitPath", "Jade",
	"CyanDream", "PhantomGroove", "Nostalgia", "ElectricSoul", "SolarRay",
	"Daybreak", "Stellar", "Myst", "StormValley", "EmeraldFlow",
	"LostEcho", "Moonlight", "RainShadow", "Eclipse", "SilverLight",
	"Skyline", "GhostFrost", "GoldenHour", "Aurora", "EchoFlow",
	"VelvetArc", "BlueMist", "StarChase", "Nightfall", "Sable",
	"Retro", "SonicTwist", "AshenGlow", "Sapphire", "CityPulse",
	"CrimsonSound", "LunaEcho", "WaveRun", "Ivory", "Blaze",
	"EchoShore", "Indigo", "PrismWave", "Cinder", "Dusk",
	"Serenity", "Lumen", "Harmony", "VaporRise", "EmberArc",
	"Lush", "Hollow", "Solace", "WhisperShade", "Drift",
	"Static", "SilverDust", "Boreal", "IronGlow", "SunRider",
	"Wildwood", "CloudCity", "Lotus", "NeonZen", "Sonnet",
}

var standardFakeTracks = []string{
	"Stardust", "Whispered Dreams", "Lunar Glow", "Echoes of You", "Velvet Sky",
	"Sapphire Nights", "Sunrise Drift", "Neon Echo", "Silent Horizon", "Soul Fire",
	"Lost in Time", "Crimson Mist", "Forevermore", "Endless Rhythm", "Golden Hour",
	"Shadows Fade", "Beneath the Waves", "Falling Stars", "Infinite Roads", "Dreamcatcher",
	"Electric Storm", "Chasing Echoes", "Celestial Tide", "Midnight Waltz", "Phantom Light",
	"Opal Moon", "Twilight Daze", "Forgotten Roads", "Sundown", "Prism Heart",
	"Sacred Sands", "Vapor Trails", "Onyx Sky", "Afterglow", "Soul Drift",
	"Echo in Blue", "Hidden Realm", "Wanderlust", "Luminous", "Veil of Fire",
	"Into the Wild", "Bright Haze", "Pulse of Rain", "Reverie", "Burning Dreams",
	"Neon Pulse", "Mystic Dawn", "Faded Echo", "Last Serenade", "Oceans Apart",
	"Gravity", "Falling Away", "Boundless", "Night Shift", "Solitude",
	"Heartbreaker", "Storm Chaser", "Endless Night", "Midnight Gold", "Moonlight Shadow",
	"Hollow Sun", "Desert Rose", "Starborne", "Out of Reach", "Forever Fade",
	"Winter Glow", "Solstice", "Celestial Dance", "Into the Abyss", "First Light",
	"Wild Heart", "Mystic River", "Shadowplay", "Ember and Ash", "City Lights",
	"Dreamscape", "Flicker", "Iron Bloom", "Snowfall", "Ghost in the Wind",
	"Echo Fields", "Lost Souls", "Solar Drift", "End of the Line", "Faded Love",
	"Skyward Bound", "Endless Roads", "Nightwalk", "Timeless", "Ocean Breeze",
	"Lost Horizon", "Silver Tide", "Burning Stars", "Forgotten Shores", "Ivory Skies",
	"Drifting", "Hidden Path", "Electric Breeze", "Voyager", "Cold Fire",
	"Sunset Fade", "Last Whisper",
}

var standardRealArtists = []string{
	"Taylor Swift", "The Weeknd", "Drake", "Billie Eilish", "Kendrick Lamar",
	"Dua Lipa", "Bad Bunny", "Ariana Grande", "Ed Sheeran", "Olivia Rodrigo",
	"Harry Styles", "SZA", "Beyoncé", "Rihanna", "Bruno Mars",
	"Coldplay", "Imagine Dragons", "Post Malone", "Doja Cat", "Frank Ocean",
	"Radiohead", "Arctic Monkeys", "Tame Impala", "Lana Del Rey", "Travis Scott",
	"Adele", "Lorde", "Mitski", "Tyler, The Creator", "Fleetwood Mac",
	"Daft Punk", "Queen", "The Beatles", "Nirvana", "Sabrina Carpenter",
}

var standardRealTracks = []string{
	"Blinding Lights", "Shape of You", "bad guy", "Levitating", "drivers license",
	"As It Was", "Anti-Hero", "HUMBLE.", "Kill Bill", "Flowers",
	"Uptown Funk", "Someone Like You", "Rolling in the Deep", "Viva La Vida", "Believer",
	"Sunflower", "Circles", "God's Plan", "Bohemian Rhapsody", "Dreams",
	"Do I Wanna Know?", "The Less I Know The Better", "Creep", "Smells Like Teen Spirit", "Get Lucky",
	"Hey Jude", "Espresso", "Royals", "Video Games", "SICKO MODE",
	"Good Days", "Nights", "Diamonds", "Halo", "Watermelon Sugar",
}

var themedFakeArtists = []string{
	"The Frosty Bells", "Holly & Mistletoe", "Snowflake Harmony", "Winter Whispers", "The Yuletide Quartet",
	"The North Pole Players", "Silver Bells Orchestra", "Evergreen Echoes", "St. Nick & Friends", "The Reindeer Swing",
	"Tinsel Tones", "The Cozy Chorale", "Noel Nightingale", "Silent Snowfall", "Snowy Sleigh",
	"Candlelight Choir", "The Warmth Singers", "Winter Waltz", "The Snowdrift Trio", "The Merry Minstrels",
	"Polar Carolers", "Frost & Ivy", "Peppermint Jam", "The Holly Harmony", "The Jingle Belles",
	"Fireside Trio", "Northern Lights Band", "Winterlight Voices", "The Mistletoes", "Sleigh Ride Rhapsody",
	"Winter Star Quartet", "The Jolly Gatherers", "Icicle Jazz", "Frosted Harmony", "The Fir Tree Troupe",
	"Snowdrop Symphony", "The Frost Fire Five", "Gingerbread Groove", "Yuletide Ensemble", "The Cozy Composers",
	"Snowfall Singers", "The Reindeer Rhythms", "Jingle All Stars", "The Starlit Sleigh", "Frosted Flutes",
	"The Winter Whistlers", "Snow Globe Serenade", "The Merry Carolers", "Glisten & Glow", "Crimson & Clove",
	"The Candlelight Carols", "Warm Wishes Quartet", "The Fir Tree Folk", "Winter Bells Band", "The Cozy Crew",
	"Chimney Choir", "The Jingle Tunes", "Noel Notes", "Frosted Stars", "The Winter Songbirds",
	"Caroling Compass", "Polar Lights", "Icicle Harmony", "Holly Days", "The Hearth Harmonics",
	"The Sugarplum Singers", "The Warmth Winders", "North Star Notes", "The Frosty Strummers",
	"Holiday Harmonies", "The Bells of Joy", "The Snow Angels", "Sleigh Song Serenade",
	"The Cheer Troupe", "The Bright Bells", "Crimson Choir", "Winter Frost Band", "Silent Snowscape",
	"Snowy Path", "The Mistletoe Melodies", "The Jolly Trio", "North Star",
	"Icicle Tunes", "The Evergreen Quartet", "Snowshoe Serenade", "Winter Glow", "The Hearth Singers",
	"The Peppermint Twists", "Polar Serenade", "Winter Spirit Band", "The Carol Keepers", "Snowstorm Singers",
	"The Silent Sleigh", "Noel Nights", "Winter Wonder Singers", "Icicle Serenade", "The Sparkling Singers",
}

var themedFakeTracks = []string{
	"Under the Mistletoe", "Frosted Dreams", "Silent Snow", "The Holly Days", "Glistening Lights",
	"Tidings of Joy", "Winter's Glow", "Yuletide Wish", "Santa's Sleighbells", "Merry & Bright",
	"In the Snowlight", "Holly and Cheer", "Frosty Footsteps", "Carols at Midnight", "Snow Angel",
	"A Winter's Star", "Candle Glow", "North Pole Nights", "The Carol of Hope", "On Christmas Eve",
	"Peace and Pine", "A Star in the Sky", "The First Frost", "Sleigh Ride Song", "Jolly and Warm",
	"On Christmas Morning", "Tidings and Cheer", "December Dream", "Under the Stars", "The Sparkling Night",
	"Holiday Heart", "A Mistletoe Wish", "The Christmas Waltz", "Carols by Firelight", "Snowman Serenade",
	"Gather Around", "Angel's Whisper", "December Moonlight", "Silver Spark", "Candy Cane Lane",
	"Merry Melody", "Winter's Embrace", "Frozen Footsteps", "Yuletide Love", "Snowfall Song",
	"Season of Joy", "In the Frosty Air", "Sparkling December", "The Snowman's Song", "Fireside Heart",
	"Peaceful Pines", "Wrapped in Wonder", "Beneath the Lights", "December Song", "Caroling By the Fire",
	"The Brightest Night", "Northern Skies", "Winter Wind", "Starry Christmas", "Holly Crown",
	"Glistening Pines", "A Silent Night", "The Reindeer's Waltz", "Candy Cane Wishes", "Snowfall Symphony",
	"Golden Glow", "At Winter's Door", "The Cheerful Light", "By the Tree", "Frosty Path",
	"Midnight Snowfall", "The Cozy Hearth", "Dream of Christmas", "Pinecone Melody", "In the Glow",
	"The First Light", "Icicle Song", "Red and Green", "A Candle's Warmth", "Sweet Noel",
	"Under a Snowy Sky", "The Cheer of Winter", "Mistletoe Dance", "Winter in Bloom", "Dreaming of Snow",
	"Snowfall Waltz", "By Starlight", "Snowbound", "Season's Whisper", "Twinkling Pines",
	"Starry Bells", "The Little Reindeer", "Holiday Serenade", "December's Promise", "With Love and Light",
	"The Warmth of Winter", "Frosted Window", "December's Light", "Peppermint Path", "Evergreen Waltz",
}

var themedRealArtists = []string{
	"Mariah Carey", "Michael Bublé", "Bing Crosby", "Nat King Cole", "Pentatonix",
	"Frank Sinatra", "Wham!", "Brenda Lee", "Elvis Presley", "Trans-Siberian Orchestra",
	"Ariana Grande", "John Legend", "Kelly Clarkson", "Josh Groban", "Samantha Smith",
	"Harry Connick Jr.", "Faith Hill", "Celine Dion", "The Jackson 5", "Dean Martin",
	"Andrea Bocelli", "Diana Krall", "Lady A", "Barbra Streisand", "James Taylor",
	"LeAnn Rimes", "Rascal Flatts", "Gwen Stefani", "Michael W. Smith", "The Carpenters",
	"Celtic Woman", "Alabama", "The Beach Boys", "Jewel", "Kenny G",
	"The Robertsons", "Lindsey Stirling", "Sheryl Crow", "Annie Lennox", "Darius Rucker",
	"Luther Vandross", "Willie Nelson", "Rosanne Cash", "Carrie Underwood", "Mannheim Steamroller",
	"The Piano Guys", "Billie Eilish", "Norah Jones", "Sara Bareilles", "Josh Turner",
}

var themedRealTracks = []string{
	"All I Want for Christmas Is You", "Jingle Bell Rock", "Silent Night", "White Christmas",
	"Winter Wonderland", "Rockin' Around the Christmas Tree", "It's Beginning to Look a Lot Like Christmas",
	"The Christmas Song", "Last Christmas", "Santa Claus Is Coming to Town",
	"O Holy Night", "Have Yourself a Merry Little Christmas", "Frosty the Snowman", "Holly Jolly Christmas",
	"Do You Hear What I Hear?", "Sleigh Ride", "Blue Christmas", "Let It Snow! Let It Snow! Let It Snow!",
	"Rudolph the Red-Nosed Reindeer", "Little Drummer Boy", "O Come, All Ye Faithful", "Joy to the World",
	"I'll Be Home for Christmas", "Silver Bells", "Carol of the Bells", "Deck the Halls", "Mary, Did You Know?",
	"We Wish You a Merry Christmas", "Baby, It's Cold Outside", "God Rest Ye Merry, Gentlemen",
	"Hark! The Herald Angels Sing", "Wonderful Christmastime", "Run Rudolph Run", "Merry Christmas Darling",
	"Feliz Navidad", "Happy Xmas (War Is Over)", "Please Come Home for Christmas", "Christmas (Baby Please Come Home)",
	"Here Comes Santa Claus", "Angels We Have Heard on High", "O Little Town of Bethlehem", "Do They Know It's Christmas?",
	"Santa Baby", "O Christmas Tree", "I Saw Mommy Kissing Santa Claus", "Jingle Bells", "Go Tell It on the Mountain",
	"Where Are You Christmas?", "Ave Maria", "What Child Is This?",
}

// BuiltinStandard returns a copy of the built-in standard lists.
func BuiltinStandard() Lists {
	return Lists{
		FakeArtists: clone(standardFakeArtists),
		FakeTracks:  clone(standardFakeTracks),
		RealArtists: clone(standardRealArtists),
		RealTracks:  clone(standardRealTracks),
	}
}

// BuiltinThemed returns a copy of the built-in themed lists.
func BuiltinThemed() Lists {
	return Lists{
		FakeArtists: clone(themedFakeArtists),
		FakeTracks:  clone(themedFakeTracks),
		RealArtists: clone(themedRealArtists),
		RealTracks:  clone(themedRealTracks),
	}
}
