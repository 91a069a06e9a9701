package etree

// tagRule says how one element contributes to flattened text.
type tagRule struct {
	useContents   bool
	prepend       string
	append        string
	removeSubtree bool
}

// knowledge holds the flattening rule for every known tag. Unknown tags
// contribute no text and are reported as UnknownTag.
var knowledge = map[string]tagRule{
	// HTML
	"html":       {false, "", "", false},
	"body":       {true, "", "", false},
	"script":     {false, "", "", true},
	"noscript":   {false, "", "", true},
	"style":      {false, "", "", true},
	"iframe":     {false, "", "", true},
	"svg":        {false, "", "", true},
	"font":       {true, "", "", false},
	"form":       {false, "", "", false},
	"input":      {false, "", "", false},
	"textarea":   {true, "", "\n\n", false},
	"select":     {false, "", "", false},
	"option":     {false, "", "", false},
	"label":      {false, "", "", false},
	"button":     {false, "", "", false},
	"link":       {true, "", " ", false},
	"img":        {false, "", "", true},
	"caption":    {true, "", "\n", false},
	"object":     {false, "", " ", true},
	"abbr":       {true, "", "", false},
	"main":       {true, "\n", "\n", false},
	"article":    {true, "\n", "\n", false},
	"nav":        {false, "\n", "\n", true},
	"aside":      {true, "", "\n", false},
	"section":    {true, "", "\n", false},
	"time":       {true, "", "", false},
	"details":    {true, "", "\n", false},
	"footer":     {true, "", "\n", true},
	"header":     {true, "", "\n", true},
	"br":         {true, "", "\n", false},
	"nobr":       {true, "", "", false},
	"dd":         {true, "", "\n", false},
	"dt":         {true, "", "\n", false},
	"fieldset":   {true, "", "\n", false},
	"figcaption": {true, "", "\n", false},
	"hr":         {true, "", "\n", false},
	"legend":     {true, "", "\n", false},
	"table":      {true, "\n", "\n", false},
	"tbody":      {true, "", "", false},
	"thead":      {true, "", "", false},
	"tfoot":      {true, "", "", false},
	"colgroup":   {false, "", " ", false},
	"col":        {false, "", " ", false},
	"tr":         {true, "", "\n", false},
	"td":         {true, "", " ", false},
	"th":         {true, "", " ", false},
	"p":          {true, "", "\n\n", false},
	"div":        {true, "", "\n", false},
	"span":       {true, "", "", false},
	"figure":     {true, "", "\n\n", false},
	"title":      {true, "", "\n\n", false},
	"h1":         {true, "", "\n\n", false},
	"h2":         {true, "", "\n\n", false},
	"h3":         {true, "", "\n\n", false},
	"h4":         {true, "", "\n\n", false},
	"h5":         {true, "", "\n\n", false},
	"h6":         {true, "", "\n\n", false},
	"ins":        {true, "", "", false},
	"del":        {true, "", "", false},
	"dl":         {true, "", "\n\n", false},
	"ol":         {true, "\n", "\n", false},
	"ul":         {true, "\n", "\n", false},
	"blockquote": {true, "", "\n\n", false},
	"pre":        {true, "", "\n\n", false},
	"code":       {true, " ", "", false},
	"a":          {true, "", "", false},
	"small":      {true, "", "", false},
	"s":          {true, "", "", false},
	"b":          {true, "", "", false},
	"u":          {true, "", "", false},
	"strong":     {true, "", "", false},
	"i":          {true, "", "", false},
	"sup":        {true, "", "", false},
	"sub":        {true, "", "", false},
	"em":         {true, "", "", false},
	"tt":         {true, "", "", false},
	"cite":       {true, "", " ", false},

	// BWB, CVDR and OP
	"nadruk":                            {true, "", "", false},
	"marquee":                           {true, "", "", false},
	"meta-data":                         {false, " ", " ", true},
	"bwb-inputbestand":                  {false, " ", " ", true},
	"bwb-wijzigingen":                   {false, " ", " ", true},
	"redactionele-correcties":           {false, " ", " ", true},
	"redactie":                          {false, " ", " ", true},
	"aanhef":                            {true, " ", " ", false},
	"wij":                               {false, "\n", "\n", false},
	"koning":                            {false, " ", " ", true},
	"toestand":                          {false, "", "", false},
	"wet-besluit":                       {true, " ", " ", false},
	"wetgeving":                         {false, "", "", false},
	"intitule":                          {true, " ", "\n", false},
	"citeertitel":                       {true, " ", "\n", false},
	"wettekst":                          {true, "", "", false},
	"afkondiging":                       {true, "", "", false},
	"divisie":                           {true, "", "", false},
	"hoofdstuk":                         {true, " ", "\n", false},
	"titel":                             {true, " ", "\n", false},
	"bijlage":                           {true, " ", "\n", false},
	"publicatiejaar":                    {true, " ", "\n", false},
	"publicatienr":                      {true, " ", "\n", false},
	"brondata":                          {true, " ", " ", false},
	"oorspronkelijk":                    {true, " ", " ", false},
	"publicatie":                        {true, " ", " ", false},
	"uitgiftedatum":                     {true, " ", " ", false},
	"ondertekeningsdatum":               {true, " ", " ", false},
	"dossierref":                        {true, " ", " ", false},
	"inwerkingtreding":                  {true, " ", " ", false},
	"considerans":                       {false, "", "", false},
	"considerans.al":                    {false, "", "", false},
	"artikel":                           {true, "\n", "", false},
	"nr":                                {true, "", " ", false},
	"lid":                               {true, "", " ", false},
	"lidnr":                             {true, "", " ", false},
	"kop":                               {true, " ", "\n", false},
	"tussenkop":                         {true, " ", " ", false},
	"tgroup":                            {true, "", "", false},
	"colspec":                           {true, "", "", false},
	"row":                               {true, " ", "\n", false},
	"entry":                             {true, " ", " ", false},
	"lijst":                             {true, "", "\n", false},
	"li":                                {true, "", "\n", false},
	"li.nr":                             {true, "", " ", false},
	"definitielijst":                    {true, "", "\n", false},
	"definitie-item":                    {true, "", "\n", false},
	"term":                              {true, "", " - ", false},
	"definitie":                         {true, "", "\n", false},
	"specificatielijst":                 {true, "", "\n", false},
	"specificatie-item":                 {true, "", "\n", false},
	"specificatie":                      {true, "", " ", false},
	"waarde":                            {true, "", " ", false},
	"noot":                              {true, "", "", false},
	"noot.nr":                           {true, "", " ", false},
	"noot.al":                           {true, "", "\n", false},
	"noot.lijst":                        {true, "", "\n", false},
	"noot.li":                           {true, "", "\n", false},
	"al":                                {true, "", "\n", false},
	"inf":                               {true, "", "", false},
	"extref":                            {true, "", "", false},
	"intref":                            {true, "", "", false},
	"extref-groep":                      {true, "", "", false},
	"intref-groep":                      {true, "", "", false},
	"nootref":                           {true, "", "\n", false},
	"aanhaling":                         {true, "", "\n", false},
	"bron":                              {true, "", "\n", false},
	"plaatje":                           {false, "", "", false},
	"illustratie":                       {false, "", "", false},
	"tekstcorrectie":                    {true, "", "", false},
	"wetsluiting":                       {false, "", "", false},
	"slotformulering":                   {true, " ", " ", false},
	"naam":                              {true, "", "", false},
	"voornaam":                          {true, "", "", false},
	"functie":                           {true, "", "", false},
	"achternaam":                        {true, "", "", false},
	"ondertekening":                     {false, "", "", true},
	"plaats":                            {false, "", "\n", true},
	"datum":                             {false, "", "\n", true},
	"uitgifte":                          {false, "", "", true},
	"dagtekening":                       {false, "", "", true},
	"gegeven":                           {false, "", "", true},
	"officiele-publicatie":              {false, "", "", false},
	"metadata":                          {false, "", "", false},
	"meta":                              {false, "", "", false},
	"gemeenteblad":                      {false, "", "", false},
	"provincieblad":                     {false, "", "", false},
	"circulaire":                        {false, "", "", false},
	"provinciaalblad":                   {false, "", "", false},
	"staatscourant":                     {false, "", "", false},
	"waterschapsblad":                   {false, "", "", false},
	"bladgemeenschappelijkeregeling":    {false, "", "", false},
	"regeling":                          {false, "", "", false},
	"regeling-tekst":                    {false, "", "", false},
	"zakelijke-mededeling-tekst":        {false, "", "", false},
	"zakelijke-mededeling-sluiting":     {false, "", "", false},
	"nota-toelichting":                  {false, "", "", false},
	"zakelijke-mededeling":              {false, "", "", false},
	"niet-dossier-stuk":                 {false, "", "", false},
	"regeling-sluiting":                 {false, "", "", false},
	"circulaire-tekst":                  {false, "", "", false},
	"bijlage-sluiting":                  {false, "", "", false},
	"circulaire.divisie":                {false, "", "", false},
	"voorstel-wet":                      {false, "", "", false},
	"voorstel-sluiting":                 {false, "", "", false},
	"circulaire-sluiting":               {false, "", "", false},
	"preambule":                         {false, "", "", false},
	"bezwaarschrift":                    {false, "", "", false},
	"kamerwrk":                          {false, "", "", false},
	"handelingen":                       {false, "", "", false},
	"algemeen":                          {false, "", "", false},
	"vrije-tekst":                       {false, "", "", false},
	"tekst-sluiting":                    {false, "", "", false},
	"kamerstuk":                         {false, "", "", false},
	"kamerstukkop":                      {false, "", "", false},
	"tekstregel":                        {false, "", "", false},
	"dossier":                           {false, "", "", false},
	"dossiernummer":                     {false, "", "", false},
	"dossiernr":                         {false, "", "", false},
	"begrotingshoofdstuk":               {false, "", "", false},
	"stuk":                              {true, "", "", false},
	"stuknr":                            {true, "", "", false},
	"ondernummer":                       {true, "", "", false},
	"datumtekst":                        {true, "", "", false},
	"amendement":                        {true, "", "", false},
	"wijziging":                         {true, "", "", false},
	"wat":                               {true, "", "", false},
	"wie":                               {false, "", "", false},
	"notatoe":                           {false, "", "", false},
	"tuskop":                            {true, "", "\n", false},
	"al-groep":                          {true, "", "\n", false},
	"subtitel":                          {true, "", "\n", false},
	"tekst":                             {true, "", "", false},
	"nds-nr":                            {true, "", "", false},
	"nds-stuk":                          {true, "", "", false},
	"margetekst":                        {true, "", "", false},
	"amendement-lid":                    {true, "", "", false},
	"frontm":                            {true, "", "", false},
	"versie":                            {true, "", "", false},
	"ordernr":                           {true, "", "", false},
	"vergjaar":                          {true, "", "", false},
	"onderw":                            {true, "", "", false},
	"nummer":                            {true, "", "", false},
	"ltrlabel":                          {true, "", "", false},
	"witreg":                            {true, "", "\n", false},
	"ondtek":                            {true, "", "\n", false},
	"agendapunt":                        {true, "", "", false},
	"item-titel":                        {true, "", "", false},
	"onderwerp":                         {true, "", "", false},
	"spreekbeurt":                       {true, "", "\n", false},
	"spreker":                           {true, "", "\n", false},
	"voorvoegsels":                      {true, "", "", false},
	"politiek":                          {true, "", "", false},
	"motie":                             {true, "", "", false},
	"motie-info":                        {true, "", "", false},
	"organisatie":                       {true, "", "", false},
	"kamervragen":                       {true, "", "", false},
	"kamervraagkop":                     {true, "", "", false},
	"kamervraagnummer":                  {true, "", "", false},
	"kamervraagomschrijving":            {true, "", "", false},
	"kamervraagonderwerp":               {true, "", "", false},
	"vraag":                             {true, "", "", false},
	"antwoord":                          {true, "", "", false},
	"vervangt":                          {true, "", "", false},
	"voetref":                           {true, "", "", false},
	"voetnoot":                          {true, "", "", false},
	"structuurtekst":                    {true, "", "", false},
	"wijzig-artikel":                    {true, "", "", false},
	"artikeltekst":                      {true, "", "", false},
	"vraagdoc":                          {true, "", "", false},
	"vragen":                            {true, "", "", false},
	"omschr":                            {true, "", "", false},
	"ondw":                              {true, "", "", false},
	"reactie":                           {true, "", "", false},
	"handeling":                         {true, "", "", false},
	"volgnr":                            {true, "", "", false},
	"part":                              {true, "", "", false},
	"item":                              {true, "", "", false},
	"itemnaam":                          {true, "", "", false},
	"itemkop":                           {true, "", "", false},
	"actie":                             {true, "", "", false},
	"motienm":                           {true, "", "", false},
	"vetnr":                             {true, "", "", false},
	"draad":                             {true, "", "", false},
	"voorz":                             {true, "", "", false},
	"opschr":                            {true, "", "", false},
	"blwstuk":                           {true, "", "", false},
	"letter":                            {true, "", "", false},
	"naderrap":                          {true, "", "", false},
	"voorwerk":                          {true, "", "", false},
	"raadnr":                            {true, "", "", false},
	"box":                               {true, "", "", false},
	"paragraaf":                         {true, "", "", false},
	"adviesrvs":                         {true, "", "", false},
	"nader-rapport":                     {true, "", "", false},
	"advies":                            {true, "", "", false},
	"object_van_advies":                 {true, "", "", false},
	"boek":                              {true, "", "", false},
	"aanhangsel":                        {true, "", "", false},
	"stcart":                            {true, "", "", false},
	"artcode":                           {true, "", "\n", false},
	"stcgeg":                            {true, "", "\n", false},
	"dag":                               {true, "", "\n", false},
	"chapeau":                           {true, "", "", false},
	"mincodes":                          {true, "", "\n", false},
	"kenmerk":                           {true, "", "", false},
	"afd":                               {true, "", "", false},
	"backm":                             {true, "", "", false},
	"nl":                                {true, "", "", false},
	"context":                           {true, "", "", false},
	"context.al":                        {true, "", "", false},
	"staatsbl":                          {true, "", "", false},
	"stb":                               {true, "", "", false},
	"jaargang":                          {true, "", "", false},
	"stbjaar":                           {true, "", "", false},
	"stbnr":                             {true, "", "", false},
	"soort":                             {true, "", "", false},
	"consider":                          {true, "", "", false},
	"grslag":                            {true, "", "", false},
	"afkondig":                          {true, "", "", false},
	"art":                               {true, "", "", false},
	"nawerk":                            {true, "", "", false},
	"slotform":                          {true, "", "", false},
	"ondertek":                          {true, "", "", false},
	"ondplts":                           {true, "", "", false},
	"onddatum":                          {true, "", "\n", false},
	"minister":                          {true, "", "", false},
	"minvan":                            {true, "", "", false},
	"gtxt":                              {true, "", "", false},
	"rijksnr":                           {true, "", "", false},
	"vraagnummer":                       {true, "", "", false},
	"trblad":                            {true, "", "", false},
	"sysnr":                             {true, "", "", false},
	"dosnr":                             {true, "", "", false},
	"dosjaar":                           {true, "", "", false},
	"hfdsta":                            {true, "", "", false},
	"hfdst":                             {true, "", "", false},
	"onddat":                            {true, "", "", false},
	"maand":                             {true, "", "", false},
	"jaar":                              {true, "", "", false},
	"min":                               {true, "", "", false},
	"kamervraagopmerking":               {true, "", "", false},
	"tractatenblad":                     {true, "", "", false},
	"sys.gegevens":                      {false, "", "", false},
	"considerans.lijst":                 {true, "", "", false},
	"wijzig-lid":                        {true, "", "", false},
	"staatsblad":                        {true, "", "", false},
	"histnoot":                          {true, "", "", false},
	"intro":                             {true, "", "", false},
	"tijd":                              {true, "", "", false},
	"aanvang":                           {true, "", "", false},
	"vrzlabel":                          {true, "", "", false},
	"vrznaam":                           {true, "", "", false},
	"aanw":                              {true, "", "", false},
	"ontwerp-besluit":                   {true, "", "", false},
	"toelicht":                          {true, "", "", false},
	"vergadering":                       {true, "", "", false},
	"vergadering-nummer":                {true, "", "", false},
	"vergaderdatum":                     {true, "", "", false},
	"vergadertijd":                      {true, "", "", false},
	"opening":                           {true, "", "", false},
	"bijschrift":                        {true, "", "", false},
	"ondertekenaar":                     {true, "", "", false},
	"wart":                              {true, "", "", false},
	"cao":                               {true, "", "", false},
	"sector":                            {true, "", "", false},
	"cao-type":                          {true, "", "", false},
	"ministerie":                        {true, "", "", false},
	"dictum":                            {true, "", "", false},
	"wijzig-cao-tekst":                  {true, "", "", false},
	"wijzig-cao-lid":                    {true, "", "", false},
	"cao-wijziging":                     {true, "", "", false},
	"cao-sluiting":                      {true, "", "", false},
	"wlid":                              {true, "", "", false},
	"wond":                              {true, "", "", false},
	"arttkst":                           {true, "", "", false},
	"officiele-inhoudsopgave":           {true, "", "", false},
	"minfinref":                         {true, "", "", false},
	"wet":                               {true, "", "", false},
	"artikelkop":                        {true, "", "", false},
	"wijzig-divisie":                    {true, "", "", false},
	"avvcao":                            {true, "", "", false},
	"branche":                           {true, "", "", false},
	"inzake":                            {true, "", "", false},
	"caonr":                             {true, "", "", false},
	"bronregel":                         {true, "", "", false},
	"stcdat":                            {true, "", "", false},
	"stcnr":                             {true, "", "", false},
	"besluit":                           {true, "", "", false},
	"aionder":                           {true, "", "", false},
	"lijn":                              {true, "", "", false},
	"handeling_bijlage":                 {true, "", "", false},
	"officielepublicatie":               {true, "", "", false},
	"expressionidentificatie":           {true, "", "", false},
	"frbrwork":                          {true, "", "", false},
	"frbrexpression":                    {true, "", "", false},
	"soortwork":                         {true, "", "", false},
	"officielepublicatieversiemetadata": {true, "", "", false},
	"gepubliceerdop":                    {true, "", "", false},
	"officielepublicatiemetadata":       {true, "", "", false},
	"eindverantwoordelijke":             {true, "", "", false},
	"maker":                             {true, "", "", false},
	"officieletitel":                    {true, "", "", false},
	"onderwerpen":                       {true, "", "", false},
	"publicatieidentifier":              {true, "", "", false},
	"publicatienaam":                    {true, "", "", false},
	"publicatieblad":                    {true, "", "", false},
	"publicatienummer":                  {true, "", "", false},
	"publiceert":                        {true, "", "", false},
	"uitgever":                          {true, "", "", false},
	"soortpublicatie":                   {true, "", "", false},
	"bladaanduiding":                    {true, "", "", false},
	"titelregel":                        {true, "", "", false},
	"kennisgeving":                      {true, "", "", false},
	"regelingopschrift":                 {true, "", "", false},
	"lichaam":                           {true, "", "", false},
	"divisietekst":                      {true, "", "", false},
	"inhoud":                            {true, "", "", false},
	"opschrift":                         {true, "", "", false},
	"inspring":                          {true, "", "", false},
	"eindref":                           {true, "", "", false},
	"eindnoot":                          {true, "", "", false},
	"citaat":                            {true, "", "", false},
	"hfdkop":                            {true, "", "", false},
	"artkop":                            {true, "", "", false},
	"bijkop":                            {true, "", "", false},
	"iszwonder":                         {true, "", "", false},
	"wlichaam":                          {true, "", "", false},
	"informatieobjectrefs":              {true, "", "", false},
	"informatieobjectref":               {true, "", "", false},
	"rechtsgebieden":                    {true, "", "", false},
	"rechtsgebied":                      {true, "", "", false},
	"besluitcompact":                    {true, "", "", false},
	"wijzigartikel":                     {true, "", "", false},
	"sluiting":                          {true, "", "", false},
	"wijzigbijlage":                     {true, "", "", false},
	"regelingmutatie":                   {true, "", "", false},
	"vervangregeling":                   {true, "", "", false},
	"regelingcompact":                   {true, "", "", false},
	"lidnummer":                         {true, "", "", false},
	"gereserveerd":                      {true, "", "", false},
	"afdeling":                          {true, "", "", false},
	"linummer":                          {true, "", "", false},
	"subparagraaf":                      {true, "", "", false},
	"begrippenlijst":                    {true, "", "", false},
	"begrip":                            {true, "", "", false},
	"toelichting":                       {true, "", "", false},
	"algemenetoelichting":               {true, "", "", false},
	"artikelgewijzetoelichting":         {true, "", "", false},
	"wartref":                           {true, "", "", false},
	"verklaringen":                      {true, "", "", false},
	"titeldeel":                         {true, "", "", false},
	"cao-divisie":                       {true, "", "", false},
	"iszwnr":                            {true, "", "", false},
	"scheidingsteken":                   {true, "", "", false},
	"verdrag":                           {true, "", "", false},
	"verdragtekst":                      {true, "", "", false},
	"bezwaar":                           {true, "", "", false},
	"taal":                              {true, "", "", false},
	"landlst":                           {true, "", "", false},
	"land":                              {true, "", "", false},
	"aanspr":                            {true, "", "", false},
	"partij":                            {true, "", "", false},
	"agenda":                            {true, "", "", false},
	"agendakop":                         {true, "", "", false},
	"agenda-uitgifte":                   {true, "", "", false},
	"agenda-divisie":                    {true, "", "", false},
	"wetv":                              {true, "", "", false},
	"herdruk":                           {true, "", "", false},
	"deel":                              {true, "", "", false},
	"rijkswetnr":                        {true, "", "", false},
	"mo":                                {true, "", "", false},
	"mbody":                             {true, "", "", false},
	"ondtit":                            {true, "", "", false},
	"cao-tekst":                         {true, "", "", false},
	"cao-bijlage":                       {true, "", "", false},
	"stukken":                           {true, "", "", false},
	"toestnd":                           {true, "", "", false},
	"circulaire.aanhef":                 {true, "", "", false},
	"mtekst":                            {true, "", "", false},
	"verbeterblad":                      {true, "", "", false},
	"par":                               {true, "", "", false},
	"subbranche":                        {true, "", "", false},
	"kol1":                              {true, "", "", false},
	"kol2":                              {true, "", "", false},
	"regelingvrijetekst":                {true, "", "", false},
	"nootnummer":                        {true, "", "", false},
	"kadertekst":                        {true, "", "", false},
	"nootnr":                            {true, "", "", false},
	"noottkst":                          {true, "", "", false},
	"besllst":                           {true, "", "", false},
	"tussennummer":                      {true, "", "", false},
	"wetvlst":                           {true, "", "", false},
	"tekstpl":                           {true, "", "", false},
	"goedkeuring":                       {true, "", "", false},
	"ondertekendop":                     {true, "", "", false},
	"motivering":                        {true, "", "", false},
	"vblad":                             {true, "", "", false},
	"marge-groep":                       {true, "", "", false},
	"context.lijst":                     {true, "", "", false},
	"lijstaanhef":                       {true, "", "", false},
	"noten":                             {true, "", "", false},
	"nootlabel":                         {true, "", "", false},
	"refop":                             {true, "", "", false},
	"grondslagen":                       {true, "", "", false},
	"grondslag":                         {true, "", "", false},
	"tekstreferentie":                   {true, "", "", false},
	"uri":                               {true, "", "", false},
	"soortref":                          {true, "", "", false},
	"groep":                             {true, "", "", false},
	"opdracht":                          {true, "", "", false},
	"definitievepublicatiedatum":        {true, "", "", false},
	"slm":                               {true, "", "", false},
	"opmerkingen":                       {true, "", "", false},
	"kamervraagbijlage":                 {true, "", "", false},
	"subsubparagraaf":                   {true, "", "", false},
	"regelingtijdelijkdeel":             {true, "", "", false},
	"conditie":                          {true, "", "", false},
	"onderwerpbrief":                    {true, "", "", false},
	"contact":                           {true, "", "", false},
	"inlinetekstafbeelding":             {true, "", "", false},
	"basiswet":                          {true, "", "", false},
	"inleidendetekst":                   {true, "", "", false},
	"commissie":                         {true, "", "", false},
	"opmerking":                         {true, "", "", false},
	"gewijzigd-verdrag":                 {true, "", "", false},
	"brieftekst":                        {true, "", "", false},
	"afzender":                          {true, "", "", false},
	"geadresseerde":                     {true, "", "", false},
	"adres":                             {true, "", "", false},
	"adresregel":                        {true, "", "", false},
	"deze":                              {true, "", "", false},
	"ondtekst":                          {true, "", "", false},
	"tekstplaatsing":                    {true, "", "", false},
	"heeftciteertitelinformatie":        {true, "", "", false},
	"citeertitelinformatie":             {true, "", "", false},
	"isofficieel":                       {true, "", "", false},
	"vervangkop":                        {true, "", "", false},
	"verwijderdetekst":                  {true, "", "", false},
	"nieuwetekst":                       {true, "", "", false},
	"vervang":                           {true, "", "", false},
	"verwijder":                         {true, "", "", false},
	"vervallen":                         {true, "", "", false},
	"titeldl":                           {true, "", "", false},
	"figuur":                            {true, "", "", false},
	"intioref":                          {true, "", "", false},
	"extioref":                          {true, "", "", false},
	"subpar":                            {true, "", "", false},
	"briefaanhef":                       {false, "", "", false},
	"rectificatietekst":                 {true, "", "", false},
	"subart":                            {true, "", "", false},
	"voegtoe":                           {true, "", "", false},
	"sub-paragraaf":                     {true, "", "\n", false},
	"cao-wijziging-groep":               {true, "", "", false},
	"koptekst":                          {true, "", "", false},
	"afkortingen":                       {true, "", "", false},
	"afkorting":                         {true, "", "", false},
	"besluitklassiek":                   {true, "", "", false},
	"regelingklassiek":                  {true, "", "", false},
	"wijziginstructies":                 {true, "", "", false},
	"instructie":                        {true, "", "", false},
	"wijziglid":                         {true, "", "", false},
	"inhopg":                            {true, "", "", false},
	"stcrt-titel":                       {true, "", "", false},
	"brongegevens":                      {true, "", "", false},
	"artikelsgewijs":                    {true, "", "", false},
	"nota-toelichting-sluiting":         {true, "", "", false},
	"ovl":                               {true, "", "", false},
	"wijzigingen":                       {true, "", "", false},
	"plotlines":                         {true, "", "", false},
	"plotline":                          {true, "", "", false},
	"alternatievetitels":                {true, "", "", false},
	"alternatievetitel":                 {true, "", "", false},
	"lijstsluiting":                     {true, "", "", false},
	"raad-van-state":                    {true, "", "", false},
	"wetwijziging":                      {true, "", "", false},
	"front":                             {false, "", "", true},
	"speaker":                           {true, "", "", false},
	"sp":                                {true, "", "", false},
	"stage":                             {true, "", "", false},
	"list":                              {true, "", "", false},
	"note":                              {true, "", "", false},
	"cf":                                {true, "", "", false},
	"xptr":                              {false, "", "", true},
	"xref":                              {false, "", "", true},
	"interpgrp":                         {true, "", "", false},
	"interp":                            {true, "", "", false},
	"text":                              {true, "", "", false},
	"pb":                                {true, "", "", false},
	"hi":                                {true, "", "", false},
	"lg":                                {true, "", "\n", false},
	"l":                                 {true, "", "\n", false},
	"q":                                 {true, "", "", false},
	"cell":                              {true, "", "\n", false},
	"lb":                                {true, "", "", false},
	"name":                              {true, "", "", false},
	"figdesc":                           {false, "", "", false},
	"cit":                               {true, "", "", false},
	"signed":                            {true, "", "", false},
	"c":                                 {true, "", "", false},
	"seg":                               {true, "", "", false},
	"bibl":                              {false, "", "", false},
	"hy":                                {true, "", "", false},
	"tune":                              {true, "", "", false},
	"reg":                               {true, "", "", false},
	"creator":                           {true, "", "\n", false},
	"publisher":                         {true, "", "\n", false},
	"contributor":                       {true, "", "\n", false},
	"description":                       {true, "", "\n", false},
	"date":                              {true, "", "\n", false},
	"subject":                           {true, "", "\n", false},
	"language":                          {true, "", "\n", false},
	"identifier":                        {true, "", "\n", false},

	// Rechtspraak
	"cvdr":             {true, "", "", false},
	"Al":               {true, "", "\n", false},
	"open-rechtspraak": {true, "", "", false},
	"RDF":              {false, "", "", true},
	"inhoudsindicatie": {true, "\n", "\n\n", false},
	"uitspraak":        {true, "\n", "\n", false},
	"conclusie":        {true, "\n", "\n", false},
	"uitspraak.info":   {true, "", "\n\n", false},
	"conclusie.info":   {true, "", "\n\n", false},
	"para":             {true, "", "\n", false},
	"parablock":        {true, "", "\n\n", false},
	"paragroup":        {true, "", "\n\n", false},
	"emphasis":         {true, "", "", false},
	"superscript":      {true, "", "", false},
	"subscript":        {true, "", "", false},
	"bridgehead":       {true, "\n", "\n", false},
	"footnote":         {true, " ", " ", false},
	"footnote-ref":     {true, "", "", false},
	"orderedlist":      {true, "\n", "\n", false},
	"itemizedlist":     {true, "\n", "\n", false},
	"listitem":         {true, "", "\n", false},
	"informaltable":    {true, "\n", "\n", false},
	"linebreak":        {false, "", "\n", false},
	"mediaobject":      {false, "", "", true},
	"imageobject":      {false, "", "", true},
	"imagedata":        {false, "", "", true},
}
